package handlers

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kokualaw/expunge-api/models"
)

const defaultCacheSize = 512

// CaseCache keeps recently evaluated cases so clients can re-fetch
// results by case id without resubmitting the record
type CaseCache struct {
	lru *lru.Cache[string, models.CaseDetails]
}

// NewCaseCache creates a cache holding up to size evaluated cases
func NewCaseCache(size int) (*CaseCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, models.CaseDetails](size)
	if err != nil {
		return nil, err
	}
	return &CaseCache{lru: c}, nil
}

// Add stores an evaluated case keyed by its case id
func (c *CaseCache) Add(caseID string, details models.CaseDetails) {
	c.lru.Add(caseID, details)
}

// Get returns the cached evaluation for a case id
func (c *CaseCache) Get(caseID string) (models.CaseDetails, bool) {
	return c.lru.Get(caseID)
}
