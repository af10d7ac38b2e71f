package service

import (
	"fmt"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// Optimizer defines the interface for shopping list optimization.
type Optimizer interface {
	Optimize(req model.OptimizationRequest, products []model.Product, coupons []model.Coupon) model.OptimizationResult
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// OptimizerService implements Optimizer using greedy per-item selection.
// Both strategies pick local minima per item or per store; there is no
// combinatorial search across bundles, which keeps a run linear in
// items x products at the cost of global optimality.
//
// The service is stateless: every call works on the product and coupon
// snapshots it is handed and produces a fresh result, so concurrent calls
// need no locking.
type OptimizerService struct {
	rules []StackRule
}

// NewOptimizerService creates a new OptimizerService with the given options.
func NewOptimizerService(opts ...Option) *OptimizerService {
	s := &OptimizerService{
		rules: DefaultStackRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithStackRules replaces the coupon stacking pipeline.
func WithStackRules(rules []StackRule) Option {
	return func(s *OptimizerService) {
		if len(rules) > 0 {
			s.rules = rules
		}
	}
}

// Optimize fulfills a shopping list as cheaply as possible from the supplied
// catalog and coupon snapshots. An empty shopping list yields a zero-cost
// result rather than an error.
func (s *OptimizerService) Optimize(req model.OptimizationRequest, products []model.Product, coupons []model.Coupon) model.OptimizationResult {
	if len(req.ShoppingList) == 0 {
		return model.EmptyResult(req.ShoppingList)
	}

	stores := req.PreferredStores
	if len(stores) == 0 {
		stores = storeNames(products)
	}

	eligible := filterByStores(products, stores)

	var plans []model.StorePlan
	if req.AllowMultiStore {
		plans = s.multiStorePlans(req.ShoppingList, eligible, coupons, stores)
	} else if plan := s.bestSingleStore(req.ShoppingList, eligible, coupons, stores); plan != nil {
		plans = []model.StorePlan{*plan}
	}

	return s.aggregate(req, plans, coupons)
}

// lineChoice is one evaluated (product, quantity, coupon stack) candidate
// for a requested item.
type lineChoice struct {
	product   model.Product
	quantity  int
	baseCost  float64
	finalCost float64
	coupons   []model.AppliedCoupon
	notes     []string
}

// evaluate prices a single candidate product for a requested item.
func (s *OptimizerService) evaluate(requested model.ShoppingItem, product model.Product, coupons []model.Coupon) lineChoice {
	quantity, converted := PackagesNeeded(requested, product)
	baseCost := product.Price * float64(quantity)
	applied, discount := stackWith(s.rules, product, quantity, coupons)

	choice := lineChoice{
		product:   product,
		quantity:  quantity,
		baseCost:  baseCost,
		finalCost: baseCost - discount,
		coupons:   applied,
	}
	if !converted {
		choice.notes = append(choice.notes, fmt.Sprintf(
			"no conversion from %s to %s, assuming %d package(s)",
			requested.Unit, product.PackageUnit, quantity))
	}
	return choice
}

func (c lineChoice) toItem(requested model.ShoppingItem) model.OptimizedItem {
	coupons := c.coupons
	if coupons == nil {
		coupons = []model.AppliedCoupon{}
	}
	return model.OptimizedItem{
		Item:           requested,
		Product:        c.product,
		QuantityToBuy:  c.quantity,
		BaseCost:       round2(c.baseCost),
		AppliedCoupons: coupons,
		FinalCost:      round2(c.finalCost),
		Savings:        round2(c.baseCost - c.finalCost),
		Notes:          c.notes,
	}
}

// singleStorePlan builds the best plan for one store, or nil when the store
// matches nothing on the list. Unmatched items are skipped, not errors.
func (s *OptimizerService) singleStorePlan(list []model.ShoppingItem, products []model.Product, coupons []model.Coupon, storeName string) *model.StorePlan {
	atStore := filterByStores(products, []string{storeName})
	if len(atStore) == 0 {
		return nil
	}

	var items []model.OptimizedItem
	var totalBase, totalFinal, totalSavings float64

	for _, requested := range list {
		matches := MatchProducts(requested, atStore)
		if len(matches) == 0 {
			continue
		}

		var best *lineChoice
		for _, product := range matches {
			choice := s.evaluate(requested, product, coupons)
			if best == nil || choice.finalCost < best.finalCost {
				c := choice
				best = &c
			}
		}

		items = append(items, best.toItem(requested))
		totalBase += best.baseCost
		totalFinal += best.finalCost
		totalSavings += best.baseCost - best.finalCost
	}

	if len(items) == 0 {
		return nil
	}

	return &model.StorePlan{
		StoreName:        storeName,
		Items:            items,
		Subtotal:         round2(totalBase),
		FinalTotal:       round2(totalFinal),
		EstimatedSavings: round2(totalSavings),
	}
}

// bestSingleStore runs every candidate store independently and keeps the
// plan with the lowest final total. Ties keep the earliest store in the
// candidate list.
func (s *OptimizerService) bestSingleStore(list []model.ShoppingItem, products []model.Product, coupons []model.Coupon, stores []string) *model.StorePlan {
	var best *model.StorePlan
	for _, store := range stores {
		plan := s.singleStorePlan(list, products, coupons, store)
		if plan == nil {
			continue
		}
		if best == nil || plan.FinalTotal < best.FinalTotal {
			best = plan
		}
	}
	return best
}

// multiStorePlans picks the globally cheapest (store, product) pair for each
// item independently, then groups the allocations by store. Store iteration
// order breaks ties, so output is deterministic for identical inputs.
func (s *OptimizerService) multiStorePlans(list []model.ShoppingItem, products []model.Product, coupons []model.Coupon, stores []string) []model.StorePlan {
	assignments := make([]*lineChoice, len(list))

	for i, requested := range list {
		var best *lineChoice
		for _, store := range stores {
			atStore := filterByStores(products, []string{store})
			for _, product := range MatchProducts(requested, atStore) {
				choice := s.evaluate(requested, product, coupons)
				if best == nil || choice.finalCost < best.finalCost {
					c := choice
					best = &c
				}
			}
		}
		assignments[i] = best
	}

	// Group by store, preserving first-assignment order.
	var storeOrder []string
	grouped := make(map[string][]model.OptimizedItem)
	for i, requested := range list {
		choice := assignments[i]
		if choice == nil {
			continue
		}
		store := choice.product.StoreName
		if _, seen := grouped[store]; !seen {
			storeOrder = append(storeOrder, store)
		}
		grouped[store] = append(grouped[store], choice.toItem(requested))
	}

	plans := make([]model.StorePlan, 0, len(storeOrder))
	for _, store := range storeOrder {
		items := grouped[store]
		var subtotal, final, savings float64
		for _, item := range items {
			subtotal += item.BaseCost
			final += item.FinalCost
			savings += item.Savings
		}
		plans = append(plans, model.StorePlan{
			StoreName:        store,
			Items:            items,
			Subtotal:         round2(subtotal),
			FinalTotal:       round2(final),
			EstimatedSavings: round2(savings),
		})
	}

	return plans
}

// storeNames returns the distinct store names present in the catalog,
// preserving first-encounter order.
func storeNames(products []model.Product) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.StoreName] {
			seen[p.StoreName] = true
			names = append(names, p.StoreName)
		}
	}
	return names
}

func filterByStores(products []model.Product, stores []string) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		for _, store := range stores {
			if p.StoreName == store {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
