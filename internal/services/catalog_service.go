package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/pkg/backend"
	"golang-storefront-backend/pkg/cache"
	"golang-storefront-backend/pkg/messaging"
)

// ErrCatalogLoad is the generic load-failure state; the detailed cause is
// logged, not exposed.
var ErrCatalogLoad = errors.New("failed to load products")

const catalogCacheKey = "catalog:products"

// CatalogService fetches the working catalog from the store backend. An
// empty backend catalog is seeded with the demo product set, one create
// call per product, then re-fetched. Best-effort initialization: a failed
// load leaves the catalog empty with no automatic retry, and a later
// Reload can try again.
type CatalogService struct {
	backend *backend.Client
	cache   *cache.RedisCache
	kafka   *messaging.KafkaProducer
	brokers []string

	mu       sync.RWMutex
	products []models.Product
	index    map[int64]models.Product
	loadErr  error
}

func NewCatalogService(backendClient *backend.Client, redisCache *cache.RedisCache, kafkaProducer *messaging.KafkaProducer, kafkaBrokers []string) *CatalogService {
	return &CatalogService{
		backend: backendClient,
		cache:   redisCache,
		kafka:   kafkaProducer,
		brokers: kafkaBrokers,
		index:   make(map[int64]models.Product),
	}
}

// Load runs the fetch / seed-if-empty / re-fetch flow and installs the
// result as the working catalog. Seed requests go out sequentially; the
// re-fetch relies on the backend reading its own writes.
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := s.backend.FetchProducts(ctx)
	if err != nil {
		s.setLoadError(err)
		return ErrCatalogLoad
	}

	if len(products) == 0 {
		for _, seed := range SeedCatalog {
			if err := s.backend.CreateProduct(ctx, seed); err != nil {
				s.setLoadError(err)
				return ErrCatalogLoad
			}
		}

		products, err = s.backend.FetchProducts(ctx)
		if err != nil {
			s.setLoadError(err)
			return ErrCatalogLoad
		}

		if s.kafka != nil {
			event := messaging.CatalogEvent{
				Type:        "catalog_seeded",
				SeededCount: len(SeedCatalog),
				CatalogSize: len(products),
			}
			if err := s.kafka.SendMessage("catalog_events", s.brokers, "catalog", event); err != nil {
				log.Printf("Failed to publish catalog event: %v", err)
			}
		}
	}

	s.install(products)

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, products, 15*time.Minute); err != nil {
			log.Printf("Failed to cache catalog: %v", err)
		}
	}

	return nil
}

// Reload is the operator-triggered retry of the load flow.
func (s *CatalogService) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// GetProducts returns the working catalog. When the in-memory catalog is
// empty (e.g. the backend was down at startup) it falls back to the Redis
// copy from a previous run, if any.
func (s *CatalogService) GetProducts(ctx context.Context) []models.Product {
	s.mu.RLock()
	if len(s.products) > 0 {
		products := make([]models.Product, len(s.products))
		copy(products, s.products)
		s.mu.RUnlock()
		return products
	}
	s.mu.RUnlock()

	if s.cache != nil {
		var cached []models.Product
		if err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil && len(cached) > 0 {
			s.install(cached)
			return cached
		}
	}

	return []models.Product{}
}

// GetProduct looks a product up by ID in the working catalog.
func (s *CatalogService) GetProduct(productID int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.index[productID]
	return product, exists
}

// Status reports the catalog size and the generic load error, if any.
func (s *CatalogService) Status() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products), s.loadErr
}

func (s *CatalogService) install(products []models.Product) {
	index := make(map[int64]models.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	s.mu.Lock()
	s.products = products
	s.index = index
	s.loadErr = nil
	s.mu.Unlock()
}

func (s *CatalogService) setLoadError(cause error) {
	log.Printf("Catalog load failed: %v", cause)

	s.mu.Lock()
	s.loadErr = ErrCatalogLoad
	s.mu.Unlock()
}
