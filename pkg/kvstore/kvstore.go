// Package kvstore 持久化网关：按名称读写槽位（slot），值为不透明字节（JSON 文档）。
//
// 后端：memory（测试/临时）、file（每槽位一个文件）、gorm（sqlite/postgres 的 kv_slots 表）、redis。
package kvstore

import (
	"context"
	"errors"
)

// ErrSlotNotFound 槽位不存在
var ErrSlotNotFound = errors.New("kvstore: 槽位不存在")

// Gateway 键值持久化接口
type Gateway interface {
	// Get 读取槽位；不存在时返回 ErrSlotNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put 覆盖写入槽位
	Put(ctx context.Context, key string, value []byte) error
	// Delete 删除槽位；不存在时不报错
	Delete(ctx context.Context, key string) error
	Close() error
}
