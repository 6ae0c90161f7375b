package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	app "safeai-bot/internal/application"
	"safeai-bot/internal/domain/entity"
)

var tierTitles = map[entity.RiskTier]string{
	entity.TierSafe:    "🟢 Безопасно",
	entity.TierCaution: "🟡 Требует внимания",
	entity.TierDanger:  "🔴 Опасно",
}

var fireTitles = map[entity.FireHazard]string{
	entity.FireLow:    "низкая",
	entity.FireMedium: "средняя",
	entity.FireHigh:   "высокая",
}

// photoName имя файла для фото из чата. Telegram пересылает фото в JPEG.
func photoName(fileUniqueID string) string {
	if fileUniqueID == "" {
		fileUniqueID = "upload"
	}
	return "photo_" + fileUniqueID + ".jpg"
}

// formatResult краткая сводка анализа для чата.
func formatResult(r *entity.AnalysisReport) string {
	if r == nil || !r.Available {
		return msgProcessingError
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", r.Narrative)
	fmt.Fprintf(&sb, "Уровень риска: %s (%s%%)\n", tierTitle(r.Tier), strconv.FormatFloat(float64(r.Score), 'f', 2, 64))
	fmt.Fprintf(&sb, "Метод строительства: %s\n\n", r.Method.Title())

	m := r.Metrics
	sb.WriteString("📊 Показатели:\n")
	fmt.Fprintf(&sb, "• Безопасность: %d\n", m.Safety)
	fmt.Fprintf(&sb, "• Долговечность: %d\n", m.Durability)
	fmt.Fprintf(&sb, "• Конструкция: %d\n", m.Design)
	fmt.Fprintf(&sb, "• Основание: %d\n", m.Foundation)
	fmt.Fprintf(&sb, "• Обслуживание: %d\n\n", m.Maintenance)

	sb.WriteString("🔍 Внутренние риски:\n")
	for _, f := range r.Hazards.Findings {
		fmt.Fprintf(&sb, "• %s\n", f)
	}
	if fire, ok := fireTitles[r.Hazards.FireHazard]; ok {
		fmt.Fprintf(&sb, "• Пожарная опасность: %s\n", fire)
	}
	sb.WriteString("\n/report — экспертное заключение")

	return sb.String()
}

// formatExpert экспертное заключение из сохранённой записи.
func formatExpert(record *entity.AnalysisRecord) (string, error) {
	expert, err := record.Expert()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Экспертное заключение (%s)\n", record.AnalyzedAt.Format("02.01.2006 15:04"))
	for _, s := range []entity.ReportSection{expert.Diagnosis, expert.Causes, expert.Repairs, expert.Durability} {
		sb.WriteString("\n")
		sb.WriteString(s.Title)
		if s.SeverityClass != "" {
			fmt.Fprintf(&sb, " [%s]", s.SeverityClass)
		}
		sb.WriteString("\n")
		for _, line := range s.Content {
			fmt.Fprintf(&sb, "• %s\n", line)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func tierTitle(tier entity.RiskTier) string {
	if t, ok := tierTitles[tier]; ok {
		return t
	}
	return string(tier)
}

// errorMessage текст для пользователя по виду ошибки анализа.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrBusy):
		return msgBusy
	case errors.Is(err, entity.ErrResource), errors.Is(err, entity.ErrDecode):
		return msgProcessingError
	case errors.Is(err, entity.ErrWrite):
		return msgSaveError
	default:
		return msgInternalError
	}
}
