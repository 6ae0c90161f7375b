package report

import (
	"math/rand/v2"
	"sync"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// Пороги плотности, от которых зависят выводы синтезатора.
const (
	masonryDensity  = 10.0 // выше — кладка принудительно
	wiringDensity   = 5.0  // выше — проверяется проводка
	ceilingDensity  = 8.0  // выше — для кладки риск обрушения потолка
	overloadDensity = 50.0 // выше — причины осадки и перегрузки
)

// Synthesizer собирает метод, метрики, текст и риски по результату скоринга.
// Случайность берётся только из переданного генератора.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer создаёт синтезатор. Если rng не задан, генератор
// инициализируется случайным seed и результаты невоспроизводимы.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng}
}

// NewSeededSynthesizer создаёт синтезатор с детерминированным генератором.
func NewSeededSynthesizer(seed uint64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewPCG(seed, seed)))
}

// Synthesize формирует выводы. Порядок обращений к генератору фиксирован:
// метод, дизайн, проводка, протечка, пожарная опасность.
func (s *Synthesizer) Synthesize(score entity.Score) port.Findings {
	s.mu.Lock()
	defer s.mu.Unlock()

	method := s.inferMethod(score.Density)
	metrics := s.dashboard(score)
	hazards := s.hazards(score, method)

	return port.Findings{
		Method:    method,
		Narrative: Narrative(score.Tier, score.Value, method),
		Metrics:   metrics,
		Hazards:   hazards,
		Expert:    ExpertReport(score, method),
	}
}

// inferMethod: плотные узоры границ трактуются как швы кладки,
// иначе метод выбирается равновероятно из каталога.
func (s *Synthesizer) inferMethod(density float64) entity.ConstructionMethod {
	if density > masonryDensity {
		return entity.MethodMasonry
	}
	return entity.ConstructionMethods[s.rng.IntN(len(entity.ConstructionMethods))]
}

// dashboard считает шкалы панели от base = 100 - score.
// Нижняя граница 10 есть только у Danger; Caution считается без ограничения.
func (s *Synthesizer) dashboard(score entity.Score) entity.DashboardMetrics {
	base := 100 - float64(score.Value)

	switch score.Tier {
	case entity.TierDanger:
		return entity.DashboardMetrics{
			Safety:      max(10, int(base-20)),
			Durability:  max(10, int(base-30)),
			Design:      s.between(30, 60),
			Foundation:  max(10, int(base-10)),
			Maintenance: 10,
		}
	case entity.TierCaution:
		return entity.DashboardMetrics{
			Safety:      int(base),
			Durability:  int(base - 10),
			Design:      s.between(60, 80),
			Foundation:  int(base),
			Maintenance: 40,
		}
	default:
		return entity.DashboardMetrics{
			Safety:      95,
			Durability:  90,
			Design:      85,
			Foundation:  98,
			Maintenance: 90,
		}
	}
}

func (s *Synthesizer) hazards(score entity.Score, method entity.ConstructionMethod) entity.InternalHazards {
	var h entity.InternalHazards
	if score.Density > wiringDensity {
		h.ExposedWiring = s.coin()
	}
	if score.Tier == entity.TierDanger {
		h.WaterLeakage = s.coin()
	}
	h.CeilingInstability = method == entity.MethodMasonry && score.Density > ceilingDensity
	h.FireHazard = entity.FireHazardLevels[s.rng.IntN(len(entity.FireHazardLevels))]

	if h.ExposedWiring {
		h.Findings = append(h.Findings, findingWiring)
	}
	if h.WaterLeakage {
		h.Findings = append(h.Findings, findingLeakage)
	}
	if h.CeilingInstability {
		h.Findings = append(h.Findings, findingCeiling)
	}
	if len(h.Findings) == 0 {
		h.Findings = append(h.Findings, findingNone)
	}
	return h
}

// between возвращает целое из [lo, hi] включительно.
func (s *Synthesizer) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Synthesizer) coin() bool {
	return s.rng.IntN(2) == 1
}

var _ port.ReportSynthesizer = (*Synthesizer)(nil)
