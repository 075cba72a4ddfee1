package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/pkg/cache"
	"github.com/pathiram/backend/internal/repository"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

//go:embed data/locations.yaml
var locationsYAML []byte

// LocationService serves the state → district → taluk → village lookups
// behind the property form, reading through a cache.
type LocationService struct {
	repo  repository.LocationRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewLocationService(repo repository.LocationRepository, c cache.Cache, ttl time.Duration) *LocationService {
	if c == nil {
		c = cache.NewMemory()
	}
	return &LocationService{repo: repo, cache: c, ttl: ttl}
}

type seedFile struct {
	States []struct {
		Name      string `yaml:"name"`
		Code      string `yaml:"code"`
		Districts []struct {
			Name   string `yaml:"name"`
			Taluks []struct {
				Name     string   `yaml:"name"`
				Villages []string `yaml:"villages"`
			} `yaml:"taluks"`
		} `yaml:"districts"`
	} `yaml:"states"`
}

// ParseLocations reads the seed format into model rows.
func ParseLocations(data []byte) ([]model.State, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	states := make([]model.State, 0, len(seed.States))
	for _, s := range seed.States {
		state := model.State{Name: s.Name, Code: s.Code}
		for _, d := range s.Districts {
			district := model.District{Name: d.Name}
			for _, t := range d.Taluks {
				taluk := model.Taluk{Name: t.Name}
				for _, v := range t.Villages {
					taluk.Villages = append(taluk.Villages, model.Village{Name: v})
				}
				district.Taluks = append(district.Taluks, taluk)
			}
			state.Districts = append(state.Districts, district)
		}
		states = append(states, state)
	}
	return states, nil
}

// Seed loads the embedded locations when no state exists yet and returns the
// number of states inserted.
func (s *LocationService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.CountStates(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	states, err := ParseLocations(locationsYAML)
	if err != nil {
		return 0, err
	}
	if err := s.repo.CreateStates(ctx, states); err != nil {
		return 0, fmt.Errorf("seed locations: %w", err)
	}
	klog.V(6).Infof("seeded %d states", len(states))
	return len(states), nil
}

func (s *LocationService) States(ctx context.Context) ([]model.State, error) {
	return cached(ctx, s, "locations:states", func() ([]model.State, error) {
		return s.repo.States(ctx)
	})
}

func (s *LocationService) Districts(ctx context.Context, stateID uint) ([]model.District, error) {
	return cached(ctx, s, fmt.Sprintf("locations:state:%d", stateID), func() ([]model.District, error) {
		return s.repo.Districts(ctx, stateID)
	})
}

func (s *LocationService) Taluks(ctx context.Context, districtID uint) ([]model.Taluk, error) {
	return cached(ctx, s, fmt.Sprintf("locations:district:%d", districtID), func() ([]model.Taluk, error) {
		return s.repo.Taluks(ctx, districtID)
	})
}

func (s *LocationService) Villages(ctx context.Context, talukID uint) ([]model.Village, error) {
	return cached(ctx, s, fmt.Sprintf("locations:taluk:%d", talukID), func() ([]model.Village, error) {
		return s.repo.Villages(ctx, talukID)
	})
}

// cached reads key from the cache, falling back to load. Cache failures are
// logged and never fail the lookup.
func cached[T any](ctx context.Context, s *LocationService, key string, load func() ([]T, error)) ([]T, error) {
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		klog.Warningf("cache get %s: %v", key, err)
	} else if ok {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	if data, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			klog.Warningf("cache set %s: %v", key, err)
		}
	}
	return items, nil
}
