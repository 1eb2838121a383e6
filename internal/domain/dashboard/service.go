package dashboard

import (
	"context"
	"time"

	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/pets"
)

// WeeklyStats son dos secuencias paralelas (labels/counts) con los
// últimos 7 días, del más viejo a hoy, más los totales de cada store.
type WeeklyStats struct {
	Labels []string
	Counts []int

	TotalPets     int
	TotalAdopters int
}

type Service struct {
	pets     *pets.Service
	adopters *adopters.Service
	now      func() time.Time
}

func NewService(petsSvc *pets.Service, adoptersSvc *adopters.Service) *Service {
	return &Service{
		pets:     petsSvc,
		adopters: adoptersSvc,
		now:      time.Now,
	}
}

// Stats calcula el histograma de altas de los últimos 7 días.
// Cada bucket es [medianoche local, medianoche siguiente - 1ms], ambos
// extremos inclusive; el ID del pet hace de timestamp de alta.
// Se calcula en cada request: "hoy" depende del reloj del servidor y
// avanza una vez por día de calendario local.
func (s *Service) Stats(ctx context.Context) (WeeklyStats, error) {
	allPets, err := s.pets.List(ctx)
	if err != nil {
		return WeeklyStats{}, err
	}
	allAdopters, err := s.adopters.List(ctx)
	if err != nil {
		return WeeklyStats{}, err
	}

	now := s.now()
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	out := WeeklyStats{
		Labels:        make([]string, 0, 7),
		Counts:        make([]int, 0, 7),
		TotalPets:     len(allPets),
		TotalAdopters: len(allAdopters),
	}

	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		from := dayStart.UnixMilli()
		to := dayStart.AddDate(0, 0, 1).UnixMilli() - 1

		n := 0
		for _, p := range allPets {
			if p.ID >= from && p.ID <= to {
				n++
			}
		}

		out.Labels = append(out.Labels, dayStart.Format("Mon"))
		out.Counts = append(out.Counts, n)
	}

	return out, nil
}
