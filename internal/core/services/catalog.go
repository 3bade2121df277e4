package services

import (
	"context"

	"breast-cancer-predictor/internal/core/domain"
)

// Catalog holds the prediction services keyed by variant, in registration order.
type Catalog struct {
	order    []string
	services map[string]*PredictionService
}

func NewCatalog(svcs ...*PredictionService) *Catalog {
	c := &Catalog{services: make(map[string]*PredictionService, len(svcs))}
	for _, svc := range svcs {
		key := svc.Variant().Key
		if _, ok := c.services[key]; !ok {
			c.order = append(c.order, key)
		}
		c.services[key] = svc
	}
	return c
}

func (c *Catalog) Get(key string) (*PredictionService, error) {
	svc, ok := c.services[key]
	if !ok {
		return nil, domain.ErrVariantNotFound
	}
	return svc, nil
}

func (c *Catalog) List() []*PredictionService {
	out := make([]*PredictionService, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.services[key])
	}
	return out
}

// LoadAll loads every variant once. Failures are returned per variant and
// never stop the remaining loads.
func (c *Catalog) LoadAll(ctx context.Context) map[string]error {
	failed := make(map[string]error)
	for _, svc := range c.List() {
		if err := svc.Load(ctx); err != nil {
			failed[svc.Variant().Key] = err
		}
	}
	return failed
}

// Ready reports whether every variant has a loaded bundle.
func (c *Catalog) Ready() bool {
	for _, svc := range c.services {
		if !svc.IsReady() {
			return false
		}
	}
	return true
}
