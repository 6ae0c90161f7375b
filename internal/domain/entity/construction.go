package entity

// ConstructionMethod предполагаемый тип несущей конструкции.
type ConstructionMethod string

const (
	MethodUnknown            ConstructionMethod = "Unknown"
	MethodReinforcedConcrete ConstructionMethod = "ReinforcedConcrete"
	MethodMasonry            ConstructionMethod = "Masonry"
	MethodSteelFrame         ConstructionMethod = "SteelFrame"
	MethodPrecastConcrete    ConstructionMethod = "PrecastConcrete"
)

// ConstructionMethods каталог методов, из которого делается случайный выбор.
// Порядок фиксирован: от него зависит воспроизводимость при заданном seed.
var ConstructionMethods = []ConstructionMethod{
	MethodReinforcedConcrete,
	MethodMasonry,
	MethodSteelFrame,
	MethodPrecastConcrete,
}

// Title возвращает название метода для текстов отчёта.
func (m ConstructionMethod) Title() string {
	switch m {
	case MethodReinforcedConcrete:
		return "железобетон (RC)"
	case MethodMasonry:
		return "каменная кладка (кирпич)"
	case MethodSteelFrame:
		return "стальной каркас (Steel)"
	case MethodPrecastConcrete:
		return "сборный железобетон (PC)"
	default:
		return "не определён"
	}
}
