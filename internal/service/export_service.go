package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmpty          = apperrors.NotFound("没有可导出的数据")
	ErrExportUnknownDataset = apperrors.Validation("不支持的导出数据集")
	ErrExportUnknownFormat  = apperrors.Validation("不支持的导出格式")
	ErrExportGenerateFail   = errors.New("生成导出文件失败")
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"

	notAvailable = "N/A"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 只通过各 Repository 的 List 读取数据
//   - CSV 使用分号分隔并带表头，与浏览器版导出文件一致
//   - XLSX 每个数据集一个 Sheet，表头加粗
//   - 日历导出每条排班一个 VEVENT，时间取班次起止时刻
type ExportService interface {
	// Export 导出 staff / shifts / assignments，format 为 csv 或 xlsx
	Export(ctx context.Context, dataset, format string) (*dto.ExportFile, error)
	// ExportCalendar 导出排班为 iCalendar
	ExportCalendar(ctx context.Context) (*dto.ExportFile, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例，loc 用于日历事件时间
func NewExportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &exportService{repo: repo, loc: loc, logger: logger}
}

// table 导出用的二维表
type table struct {
	name     string // 文件名（不含扩展名）
	sheet    string
	headers  []string
	rows     [][]string
	colWidth float64
}

// ────────────────────── Export ──────────────────────

func (s *exportService) Export(ctx context.Context, dataset, format string) (*dto.ExportFile, error) {
	if format == "" {
		format = dto.FormatCSV
	}
	if format != dto.FormatCSV && format != dto.FormatXLSX {
		return nil, ErrExportUnknownFormat
	}

	t, err := s.buildTable(ctx, dataset)
	if err != nil {
		return nil, err
	}
	if len(t.rows) == 0 {
		return nil, ErrExportEmpty
	}

	if format == dto.FormatXLSX {
		return s.renderXLSX(t)
	}
	return s.renderCSV(t)
}

func (s *exportService) buildTable(ctx context.Context, dataset string) (*table, error) {
	switch dataset {
	case dto.DatasetStaff:
		list, err := s.repo.Staff.List(ctx)
		if err != nil {
			s.logger.Error("查询员工列表失败", zap.Error(err))
			return nil, err
		}
		t := &table{
			name:     "personal_clinica",
			sheet:    "Personal",
			headers:  []string{"Identificación", "Nombre", "Departamento", "Cargo", "Teléfono", "Email", "Fecha Contratación", "Tipo Contrato"},
			colWidth: 18,
		}
		for _, st := range list {
			t.rows = append(t.rows, []string{st.IDNumber, st.Name, st.Department, st.Position, st.Phone, st.Email, st.HireDate, st.ContractType})
		}
		return t, nil

	case dto.DatasetShifts:
		list, err := s.repo.Shift.List(ctx)
		if err != nil {
			s.logger.Error("查询班次列表失败", zap.Error(err))
			return nil, err
		}
		t := &table{
			name:     "turnos_definidos",
			sheet:    "Turnos",
			headers:  []string{"Tipo", "Fecha", "Hora Inicio", "Hora Finalización"},
			colWidth: 16,
		}
		for _, sh := range list {
			t.rows = append(t.rows, []string{sh.Type, sh.Date, sh.StartTime, sh.EndTime})
		}
		return t, nil

	case dto.DatasetAssignments:
		list, err := s.repo.Assignment.List(ctx)
		if err != nil {
			s.logger.Error("查询排班列表失败", zap.Error(err))
			return nil, err
		}
		staffByID, shiftByID, err := loadReferents(ctx, s.repo)
		if err != nil {
			s.logger.Error("查询员工或班次失败", zap.Error(err))
			return nil, err
		}
		t := &table{
			name:  "asignaciones_turnos",
			sheet: "Asignaciones",
			headers: []string{
				"Fecha Asignación", "Nombre Personal", "Identificación Personal", "Departamento Personal",
				"Cargo Personal", "Tipo Turno", "Fecha Turno", "Hora Inicio Turno", "Hora Finalización Turno",
			},
			colWidth: 20,
		}
		for _, a := range list {
			t.rows = append(t.rows, assignmentRow(a, staffByID, shiftByID))
		}
		return t, nil

	default:
		return nil, ErrExportUnknownDataset
	}
}

// assignmentRow 引用缺失的字段填 N/A
func assignmentRow(a model.Assignment, staffByID map[string]model.Staff, shiftByID map[string]model.Shift) []string {
	row := []string{a.Date}
	if st, ok := staffByID[a.StaffID]; ok {
		row = append(row, st.Name, st.IDNumber, st.Department, st.Position)
	} else {
		row = append(row, notAvailable, notAvailable, notAvailable, notAvailable)
	}
	if sh, ok := shiftByID[a.ShiftID]; ok {
		row = append(row, sh.Type, sh.Date, sh.StartTime, sh.EndTime)
	} else {
		row = append(row, notAvailable, notAvailable, notAvailable, notAvailable)
	}
	return row
}

func (s *exportService) renderCSV(t *table) (*dto.ExportFile, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	w.Comma = ';'

	if err := w.Write(t.headers); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	if err := w.WriteAll(t.rows); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	return &dto.ExportFile{
		Filename:    t.name + ".csv",
		ContentType: contentTypeCSV,
		Body:        buf,
	}, nil
}

func (s *exportService) renderXLSX(t *table) (*dto.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(t.sheet)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	lastCol := colName(len(t.headers) - 1)
	f.SetColWidth(t.sheet, "A", lastCol, t.colWidth)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range t.headers {
		f.SetCellValue(t.sheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(t.sheet, "A1", cell(lastCol, 1), headerStyle)

	// 数据行
	for r, row := range t.rows {
		for i, v := range row {
			f.SetCellValue(t.sheet, cell(colName(i), r+2), v)
		}
	}

	// 冻结表头
	f.SetPanes(t.sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	return &dto.ExportFile{
		Filename:    t.name + ".xlsx",
		ContentType: contentTypeXLSX,
		Body:        buf,
	}, nil
}

// ────────────────────── ExportCalendar ──────────────────────

func (s *exportService) ExportCalendar(ctx context.Context) (*dto.ExportFile, error) {
	list, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("查询排班列表失败", zap.Error(err))
		return nil, err
	}
	staffByID, shiftByID, err := loadReferents(ctx, s.repo)
	if err != nil {
		s.logger.Error("查询员工或班次失败", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//roster//shift assignments//ES")
	cal.SetXWRCalName("Asignaciones de turnos")
	cal.SetXWRTimezone(s.loc.String())

	now := time.Now()
	count := 0
	for _, a := range list {
		st, okStaff := staffByID[a.StaffID]
		sh, okShift := shiftByID[a.ShiftID]
		if !okStaff || !okShift {
			continue
		}
		start, err := clock.At(a.Date, sh.StartTime, s.loc)
		if err != nil {
			s.logger.Warn("排班时间无效，已跳过", zap.String("assignment_id", a.ID), zap.Error(err))
			continue
		}
		end, err := clock.At(a.Date, sh.EndTime, s.loc)
		if err != nil {
			s.logger.Warn("排班时间无效，已跳过", zap.String("assignment_id", a.ID), zap.Error(err))
			continue
		}

		event := cal.AddEvent(a.ID + "@roster")
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s: %s", sh.Type, st.Name))
		event.SetDescription(fmt.Sprintf("%s / %s", st.Department, st.Position))
		count++
	}

	if count == 0 {
		return nil, ErrExportEmpty
	}

	return &dto.ExportFile{
		Filename:    "asignaciones_turnos.ics",
		ContentType: contentTypeICS,
		Body:        bytes.NewBufferString(cal.Serialize()),
	}, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
