package entity

import (
	"path"
	"path/filepath"
)

// ArtifactWebDir каталог, относительно которого веб-слой отдаёт артефакты.
const ArtifactWebDir = "uploads"

// ProcessedPrefix префикс имени визуализации.
const ProcessedPrefix = "processed_"

// DashboardMetrics пять шкал панели, каждая в диапазоне [0, 100].
type DashboardMetrics struct {
	Safety      int `json:"safety"`
	Durability  int `json:"durability"`
	Design      int `json:"design"`
	Foundation  int `json:"foundation"`
	Maintenance int `json:"maintenance"`
}

// FireHazard уровень пожарной опасности.
type FireHazard string

const (
	FireUnknown FireHazard = "Unknown"
	FireLow     FireHazard = "Low"
	FireMedium  FireHazard = "Medium"
	FireHigh    FireHazard = "High"
)

// FireHazardLevels варианты для равновероятного выбора.
var FireHazardLevels = []FireHazard{FireLow, FireMedium, FireHigh}

// InternalHazards флаги внутренних рисков и их текстовые описания.
// Findings идут в порядке: проводка, протечка, потолок.
type InternalHazards struct {
	ExposedWiring      bool       `json:"exposed_wiring"`
	WaterLeakage       bool       `json:"water_leakage"`
	CeilingInstability bool       `json:"ceiling_instability"`
	FireHazard         FireHazard `json:"fire_hazard"`
	Findings           []string   `json:"findings"`
}

// ReportSection раздел экспертного отчёта.
type ReportSection struct {
	Title         string   `json:"title"`
	Severity      RiskTier `json:"severity"`
	SeverityClass string   `json:"severity_class,omitempty"`
	Content       []string `json:"content"`
}

// ExpertReport экспертный отчёт из четырёх фиксированных разделов.
type ExpertReport struct {
	Diagnosis  ReportSection `json:"diagnosis"`
	Causes     ReportSection `json:"causes"`
	Repairs    ReportSection `json:"repairs"`
	Durability ReportSection `json:"durability"`
}

// Artifact закодированное изображение с наложенными контурами.
type Artifact struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Data   []byte `json:"-"`
}

// ProcessedName возвращает имя визуализации для исходного файла.
func ProcessedName(original string) string {
	return ProcessedPrefix + filepath.Base(original)
}

// WebPath относительный путь, по которому веб-слой отдаёт артефакт.
func (a *Artifact) WebPath() string {
	if a == nil || a.Name == "" {
		return ""
	}
	return path.Join(ArtifactWebDir, a.Name)
}

// AnalysisReport итог одного прогона анализа. После сборки не изменяется,
// владение целиком переходит вызывающему.
type AnalysisReport struct {
	// Available=false означает «анализ недоступен», а не безопасный результат.
	Available  bool
	SourceName string
	Width      int
	Height     int
	Density    float64
	Score      RiskScore
	Tier       RiskTier
	Method     ConstructionMethod
	Narrative  string
	Artifact   *Artifact
	Metrics    DashboardMetrics
	Hazards    InternalHazards
	Expert     ExpertReport
}

// NeutralNarrative текст нейтрального результата.
const NeutralNarrative = "Анализ недоступен"

// NeutralReport результат для случаев, когда изображение не удалось получить
// или декодировать: нулевая оценка, Safe, метод не определён, без выводов.
func NeutralReport(sourceName string) *AnalysisReport {
	return &AnalysisReport{
		Available:  false,
		SourceName: sourceName,
		Score:      0,
		Tier:       TierSafe,
		Method:     MethodUnknown,
		Narrative:  NeutralNarrative,
		Hazards: InternalHazards{
			FireHazard: FireUnknown,
		},
	}
}

// CrackDetected сообщает, найдены ли признаки трещин.
func (r *AnalysisReport) CrackDetected() bool {
	return r.Available && r.Tier != TierSafe
}
