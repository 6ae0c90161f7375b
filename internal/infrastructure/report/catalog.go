package report

import (
	"fmt"
	"strconv"

	"safeai-bot/internal/domain/entity"
)

const (
	findingWiring  = "Открытая электропроводка (риск поражения током и возгорания)"
	findingLeakage = "Следы протечек на потолке и стенах (ускоренная коррозия)"
	findingCeiling = "Риск обрушения отделки потолка (прогиб конструкции)"
	findingNone    = "Замечаний нет (внутренние инженерные системы в норме)"
)

const (
	titleDiagnosis  = "Детальная диагностика (Detailed Diagnosis)"
	titleCauses     = "Анализ причин повреждений (Root Cause Analysis)"
	titleRepairs    = "Меры по ремонту и усилению (Remedial Measures)"
	titleDurability = "Оценка долговечности (Durability Assessment)"
)

// Narrative возвращает текст оценки устойчивости для уровня риска.
// Оценка подставляется только в текст уровня Danger.
func Narrative(tier entity.RiskTier, score entity.RiskScore, method entity.ConstructionMethod) string {
	m := method.Title()
	switch tier {
	case entity.TierSafe:
		return fmt.Sprintf("✅ **Оценка конструктивной устойчивости**: удовлетворительно\n"+
			"Несущая система на основе «%s» эффективно распределяет проектные нагрузки, "+
			"признаков кручения несущих стен или трещин сдвига нет. "+
			"Это говорит о высоком качестве строительства: здание находится в стабильной фазе жизненного цикла.", m)
	case entity.TierCaution:
		return fmt.Sprintf("⚠️ **Оценка конструктивной устойчивости**: требует внимания\n"+
			"На поверхности конструкции «%s» обнаружены волосяные трещины (Hairline Crack) "+
			"от концентрации растягивающих напряжений. "+
			"Скорее всего, это ранние признаки старения материала, усадки при высыхании или незначительной неравномерной осадки. "+
			"Особенно важно наблюдать за изменением напряжений в зоне стыков (Joint).", m)
	case entity.TierDanger:
		return fmt.Sprintf("🚨 **Оценка конструктивной устойчивости**: опасно\n"+
			"В основных несущих элементах выявлен плотный узор трещин: %s%% и более. "+
			"Вероятная причина — внешние воздействия сверх допустимых напряжений или деформация основания. "+
			"В конструкции «%s» может быстро развиваться коррозия арматуры или карбонизация бетона, "+
			"поэтому необходимо немедленное детальное обследование, включая неразрушающий контроль (NDT).",
			strconv.FormatFloat(float64(score), 'f', 2, 64), m)
	default:
		return entity.NeutralNarrative
	}
}

// ExpertReport собирает четыре раздела экспертного отчёта из справочников.
func ExpertReport(score entity.Score, method entity.ConstructionMethod) entity.ExpertReport {
	class := SeverityClass(score.Tier)
	return entity.ExpertReport{
		Diagnosis: entity.ReportSection{
			Title:         titleDiagnosis,
			Severity:      score.Tier,
			SeverityClass: class,
			Content:       diagnosis(score.Tier),
		},
		Causes: entity.ReportSection{
			Title:    titleCauses,
			Severity: score.Tier,
			Content:  causes(method, score.Density),
		},
		Repairs: entity.ReportSection{
			Title:    titleRepairs,
			Severity: score.Tier,
			Content:  repairs(score.Tier),
		},
		Durability: entity.ReportSection{
			Title:         titleDurability,
			Severity:      score.Tier,
			SeverityClass: class,
			Content:       durability(score.Tier),
		},
	}
}

// SeverityClass класс A/B/C для Safe/Caution/Danger.
func SeverityClass(tier entity.RiskTier) string {
	switch tier {
	case entity.TierDanger:
		return "Class C"
	case entity.TierCaution:
		return "Class B"
	default:
		return "Class A"
	}
}

func diagnosis(tier entity.RiskTier) []string {
	switch tier {
	case entity.TierDanger:
		return []string{
			"Ширина трещин в основных несущих элементах (колонны, несущие стены) превышает допустимый предел 0,3 мм.",
			"Направление развития трещин совпадает с потоком касательных напряжений (Shear Stress): возможна потеря несущей способности.",
			"Высока вероятность отслоения (Spalling) и оголения арматуры из-за недостаточного защитного слоя бетона.",
		}
	case entity.TierCaution:
		return []string{
			"Наблюдается множество сетчатых микротрещин от усадки при высыхании (Drying Shrinkage).",
			"Сквозных трещин от работы конструкции нет, но проникновение влаги снижает долговечность.",
			"Выявлены трещины в стыках разнородных материалов между ненесущими элементами и каркасом.",
		}
	default:
		return []string{
			"Состояние поверхности обследованных элементов в целом исправное (Sound).",
			"Выявленные микротрещины волосяного уровня (Hairline) не связаны с работой конструкции.",
			"Отделка рабочих швов (Construction Joint) хорошо сохранилась.",
		}
	}
}

func causes(method entity.ConstructionMethod, density float64) []string {
	var out []string
	switch method {
	case entity.MethodReinforcedConcrete:
		out = append(out, "Теплота гидратации и усадка при твердении бетона после укладки")
	case entity.MethodMasonry:
		out = append(out, "Снижение адгезии кладочного раствора и уязвимость стен к горизонтальным нагрузкам")
	case entity.MethodSteelFrame, entity.MethodPrecastConcrete, entity.MethodUnknown:
	}

	if density > overloadDensity {
		out = append(out,
			"Концентрация напряжений от неравномерной осадки основания (Differential Settlement)",
			"Возможное действие временной нагрузки (Live Load) сверх проектной",
		)
	} else {
		out = append(out, "Накопленная усталость материала от длительных температурных деформаций (Thermal Expansion)")
	}
	return out
}

func repairs(tier entity.RiskTier) []string {
	switch tier {
	case entity.TierDanger:
		return []string{
			"**Инъектирование эпоксидной смолой (Epoxy Injection)**: нагнетание конструкционной эпоксидной смолы в трещины шире 0,3 мм для восстановления монолитности",
			"**Усиление стальными пластинами (Steel Plate Bonding)**: наклейка пластин на элементы с недостаточной несущей способностью",
			"**Восстановление сечения**: удаление отслоившегося бетона, ремонт полимерным раствором и нанесение упрочнителя",
		}
	case entity.TierCaution:
		return []string{
			"**Поверхностная герметизация (Surface Sealing)**: защита микротрещин от проникновения влаги и углекислого газа",
			"**V-образная расшивка и заполнение**: после проверки развития трещины заполнить эластичным герметиком",
			"**Инъектирование протечек**: нагнетание гидрофильной полиуретановой пены во влажные трещины",
		}
	default:
		return []string{
			"**Плановый осмотр (Regular Inspection)**: визуальный осмотр раз в год для поддержания текущего состояния",
			"**Очистка поверхности и гидрофобизация**: удаление загрязнений и формирование защитного слоя",
		}
	}
}

func durability(tier entity.RiskTier) []string {
	switch tier {
	case entity.TierDanger:
		return []string{"Class C: остаточный ресурс под угрозой, требуется немедленное усиление и повторное обследование."}
	case entity.TierCaution:
		return []string{"Class B: ресурс сохранён при условии ремонта трещин и ежегодного мониторинга."}
	default:
		return []string{"Class A: расчётный срок службы обеспечен при обычном обслуживании."}
	}
}
