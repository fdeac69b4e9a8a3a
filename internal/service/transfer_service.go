package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	backupFilePrefix = "matematik_asistani_yedek_"
	ledgerFilePrefix = "ders_defteri_"

	ledgerSheet   = "Dersler"
	studentsSheet = "Öğrenciler"
)

// TransferService экспорт и импорт резервных копий
type TransferService struct {
	logger *zap.Logger
}

// NewTransferService создает новый сервис
func NewTransferService(logger *zap.Logger) *TransferService {
	return &TransferService{logger: logger}
}

// ExportJSON сериализует агрегат в JSON с отступом в два пробела
func (s *TransferService) ExportJSON(data model.AppData, now time.Time) (string, []byte, error) {
	data.Normalize()

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("marshal backup: %w", err)
	}

	filename := backupFilePrefix + now.Format(model.DateLayout) + ".json"
	s.logger.Info("Backup exported",
		zap.String("filename", filename),
		zap.Int("bytes", len(body)))

	return filename, body, nil
}

// importEnvelope отличает отсутствующие списки от пустых
type importEnvelope struct {
	Students *[]model.Student  `json:"students" validate:"required"`
	Lessons  *[]model.Lesson   `json:"lessons" validate:"required"`
	Todos    *[]model.TodoItem `json:"todos"`
}

// ParseImport разбирает файл резервной копии, не трогая текущее состояние.
// Файл обязан содержать списки students и lessons.
func (s *TransferService) ParseImport(raw []byte) (model.AppData, error) {
	var env importEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.logger.Warn("Import rejected: bad json", zap.Error(err))
		return model.AppData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	if err := model.Validate(env); err != nil {
		s.logger.Warn("Import rejected: missing lists", zap.Error(err))
		return model.AppData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	data := model.AppData{
		Students: *env.Students,
		Lessons:  *env.Lessons,
	}
	if env.Todos != nil {
		data.Todos = *env.Todos
	}
	data.Normalize()

	return data, nil
}

// ExportLedgerXLSX выгружает журнал занятий и список учеников в таблицу
func (s *TransferService) ExportLedgerXLSX(data model.AppData, now time.Time) (string, []byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return "", nil, fmt.Errorf("rename sheet: %w", err)
	}

	names := make(map[string]string, len(data.Students))
	for _, st := range data.Students {
		names[st.ID] = st.Name
	}

	header := []interface{}{"Tarih", "Saat", "Öğrenci", "Konu", "Süre (dk)", "Ücret", "Durum", "Ödeme"}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return "", nil, fmt.Errorf("write ledger header: %w", err)
	}

	for i, l := range SortLessonsNewestFirst(data.Lessons) {
		name, ok := names[l.StudentID]
		if !ok {
			name = UnknownStudentName
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, fmt.Errorf("ledger cell: %w", err)
		}

		row := []interface{}{
			l.Date, l.Time, name, l.Topic, l.DurationMinutes, l.Price,
			string(l.Status), string(l.PaymentStatus),
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return "", nil, fmt.Errorf("write ledger row: %w", err)
		}
	}

	if _, err := f.NewSheet(studentsSheet); err != nil {
		return "", nil, fmt.Errorf("create students sheet: %w", err)
	}

	studentHeader := []interface{}{"Ad Soyad", "Seviye", "E-posta", "Telefon", "Notlar"}
	if err := f.SetSheetRow(studentsSheet, "A1", &studentHeader); err != nil {
		return "", nil, fmt.Errorf("write students header: %w", err)
	}

	for i, st := range data.Students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, fmt.Errorf("students cell: %w", err)
		}
		row := []interface{}{st.Name, string(st.Level), st.Email, st.Phone, st.Notes}
		if err := f.SetSheetRow(studentsSheet, cell, &row); err != nil {
			return "", nil, fmt.Errorf("write student row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("write workbook: %w", err)
	}

	filename := ledgerFilePrefix + now.Format(model.DateLayout) + ".xlsx"
	s.logger.Info("Ledger exported",
		zap.String("filename", filename),
		zap.Int("lessons", len(data.Lessons)))

	return filename, buf.Bytes(), nil
}
