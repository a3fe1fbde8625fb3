package generator

import (
	"fmt"
	"math"
	"time"

	"veridian-datagen/models"
	"veridian-datagen/utils"
)

// Synthesizer builds single listing records. Its only mutable state is the
// random source, so it must not be shared between goroutines.
type Synthesizer struct {
	registry *Registry
	catalog  Catalog
	// tier-1 followed by tier-2, drawn from as one pool
	reputable []string
	rng       Rand
	clock     func() time.Time
}

// NewSynthesizer wires a registry and catalog to a random source. A source is
// mandatory: pass WithSeed or WithRand.
func NewSynthesizer(reg *Registry, cat Catalog, opts ...Option) (*Synthesizer, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, fmt.Errorf("NewSynthesizer: %w", ErrInvalidLocality)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("NewSynthesizer: %w", err)
	}
	o := newOptions(opts...)
	if o.rng == nil {
		return nil, fmt.Errorf("NewSynthesizer: %w", ErrNeedRandSource)
	}

	reputable := make([]string, 0, len(cat.TierOneDevelopers)+len(cat.TierTwoDevelopers))
	reputable = append(reputable, cat.TierOneDevelopers...)
	reputable = append(reputable, cat.TierTwoDevelopers...)

	return &Synthesizer{
		registry:  reg,
		catalog:   cat,
		reputable: reputable,
		rng:       o.rng,
		clock:     o.clock,
	}, nil
}

// Synthesize produces the record for generation index index. Trap records are
// priced 20% under market, sold by an unreliable developer and always carry a
// revoked approval or pending litigation.
func (s *Synthesizer) Synthesize(index int, category models.Category, isTrap bool) (models.PropertyRecord, error) {
	rule, ok := categoryRules[category]
	if !ok {
		return models.PropertyRecord{}, fmt.Errorf("Synthesize(%q): %w", category, ErrInvalidCategory)
	}

	loc, err := s.registry.Get(pick(s.rng, s.registry.names))
	if err != nil {
		return models.PropertyRecord{}, fmt.Errorf("Synthesize: %w", err)
	}

	lat := loc.Lat + uniformFloat(s.rng, -coordJitter, coordJitter)
	lng := loc.Lng + uniformFloat(s.rng, -coordJitter, coordJitter)
	transit := math.Max(0, loc.TransitDistanceBase+uniformFloat(s.rng, -transitJitter, transitJitter))

	bedrooms, area, basePrice, yield, title := s.size(rule)

	price := int64(math.Floor(float64(basePrice) * loc.PriceMultiplier))
	if isTrap {
		price = int64(math.Floor(float64(price) * trapDiscount))
	}

	appreciation := loc.AppreciationBase + uniformInt(s.rng, -appreciationSpread, appreciationSpread)

	maintenance := 0
	if category != models.Plot {
		maintenance = int(math.RoundToEven(float64(area) * maintenancePerSqFt))
	}

	developer := s.developer(category, isTrap)
	status, litigation := s.legalStatus(isTrap)

	days := uniformInt(s.rng, minPossessionDays, maxPossessionDays)
	possession := s.clock().AddDate(0, 0, days).Format(models.PossessionDateLayout)

	image := pick(s.rng, s.catalog.Images[category])

	return models.PropertyRecord{
		ID:              models.FormatID(index + 1),
		Title:           rule.title(bedrooms, area, loc.Name),
		Developer:       developer,
		Locality:        loc.Name,
		Lat:             utils.RoundTo(lat, coordPlaces),
		Lng:             utils.RoundTo(lng, coordPlaces),
		Price:           price,
		CarpetArea:      area,
		Bedrooms:        bedrooms,
		Category:        category,
		LandTitle:       title,
		RentalYield:     yield,
		Appreciation:    appreciation,
		TransitDistance: utils.RoundTo(transit, transitPlaces),
		ApprovalStatus:  status,
		Litigation:      litigation,
		PossessionDate:  possession,
		Maintenance:     maintenance,
		ImageURL:        image,
		Trap:            isTrap,
	}, nil
}

// size draws bedrooms, area, base price, yield and land title, in that order.
func (s *Synthesizer) size(rule categoryRule) (bedrooms, area int, basePrice int64, yield float64, title models.LandTitle) {
	if len(rule.bedrooms) > 0 {
		bedrooms = pick(s.rng, rule.bedrooms)
		area = bedrooms * uniformInt(s.rng, rule.areaMin, rule.areaMax)
	} else {
		area = uniformInt(s.rng, rule.areaMin, rule.areaMax)
	}
	basePrice = int64(area) * int64(uniformInt(s.rng, rule.rateMin, rule.rateMax))

	if rule.yieldMax > 0 {
		yield = utils.RoundTo(uniformFloat(s.rng, rule.yieldMin, rule.yieldMax), yieldPlaces)
	}

	switch {
	case rule.leaseholdChance >= 1:
		title = models.Leasehold
	case rule.leaseholdChance <= 0:
		title = models.Freehold
	case chance(s.rng, rule.leaseholdChance):
		title = models.Leasehold
	default:
		title = models.Freehold
	}
	return bedrooms, area, basePrice, yield, title
}

func (s *Synthesizer) developer(category models.Category, isTrap bool) string {
	switch {
	case isTrap:
		return pick(s.rng, s.catalog.UnreliableDevelopers)
	case category.IsResidential():
		return pick(s.rng, s.reputable)
	default:
		return models.NoDeveloper
	}
}

// legalStatus: a trap is either revoked with no cases or approved with 1-3
// cases, so it always fails the risk check. Anything else is approved 8 times
// in 9 and litigated 1 time in 10, independently.
func (s *Synthesizer) legalStatus(isTrap bool) (models.ApprovalStatus, int) {
	if isTrap {
		if chance(s.rng, trapRevokedChance) {
			return models.Revoked, 0
		}
		return models.Approved, uniformInt(s.rng, trapLitigationMin, trapLitigationMax)
	}

	status := models.Approved
	if s.rng.Intn(approvedWeight+revokedWeight) >= approvedWeight {
		status = models.Revoked
	}
	litigation := 0
	if chance(s.rng, litigationChance) {
		litigation = uniformInt(s.rng, nonTrapLitigationMin, nonTrapLitigationMax)
	}
	return status, litigation
}
