package roster

import "oncall-roster-service/internal/domain"

// ComputeInequality возвращает разброс нагрузки (max - min) по участникам.
// Historical считается только по сохраненным дежурствам, Preview считается по
// эффективной нагрузке. Для пустого списка обе величины равны нулю.
// Метрики диагностические: генерация никогда не отклоняет неравный исход.
func ComputeInequality(counters []domain.PreviewCounter) domain.PreviewInequality {
	if len(counters) == 0 {
		return domain.PreviewInequality{}
	}

	minSaved, maxSaved := counters[0].SavedCount, counters[0].SavedCount
	minEffective, maxEffective := counters[0].EffectiveCount, counters[0].EffectiveCount

	for _, c := range counters[1:] {
		if c.SavedCount < minSaved {
			minSaved = c.SavedCount
		}
		if c.SavedCount > maxSaved {
			maxSaved = c.SavedCount
		}
		if c.EffectiveCount < minEffective {
			minEffective = c.EffectiveCount
		}
		if c.EffectiveCount > maxEffective {
			maxEffective = c.EffectiveCount
		}
	}

	return domain.PreviewInequality{
		Historical: maxSaved - minSaved,
		Preview:    maxEffective - minEffective,
	}
}
