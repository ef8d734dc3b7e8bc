package domain

// SlotPolicy мастер-список слотов на день
// Strict = false: при бронировании принимается любой токен слота
// Strict = true: принимаются только слоты из Times
type SlotPolicy struct {
	Times  []string
	Strict bool
}

// Contains проверяет, есть ли слот в мастер-списке
func (p SlotPolicy) Contains(slot string) bool {
	for _, t := range p.Times {
		if t == slot {
			return true
		}
	}
	return false
}

// Accepts проверяет, можно ли забронировать слот при текущей политике
func (p SlotPolicy) Accepts(slot string) bool {
	return !p.Strict || p.Contains(slot)
}
