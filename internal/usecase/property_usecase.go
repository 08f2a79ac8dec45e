package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/internal/domain/service"
	"gimo/pkg/errors"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

type PropertyInput struct {
	Title        string
	Type         string
	Price        float64
	Currency     string
	Description  string
	City         string
	Neighborhood string
	Address      string
	Latitude     *float64
	Longitude    *float64
	SellerName   string
	SellerPhone  string
	SellerEmail  string
	Images       []string
	VideoURL     string
	Status       string
}

// filterMediaURLs keeps only http(s) URLs. Offending entries are dropped
// silently, not rejected.
func filterMediaURLs(urls []string) []string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			kept = append(kept, u)
		}
	}
	return kept
}

func filterMediaURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return ""
}

func (uc *PropertyUseCase) Create(ctx context.Context, actor *entity.User, input PropertyInput) (*entity.Property, error) {
	if !entity.ValidPropertyType(input.Type) {
		return nil, errors.Validation("Invalid property type", nil)
	}
	if input.Price <= 0 {
		return nil, errors.Validation("Price must be greater than zero", nil)
	}

	now := time.Now()
	property := &entity.Property{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(input.Title),
		Type:          input.Type,
		Price:         input.Price,
		Currency:      input.Currency,
		Description:   input.Description,
		City:          strings.TrimSpace(input.City),
		Neighborhood:  strings.TrimSpace(input.Neighborhood),
		Address:       strings.TrimSpace(input.Address),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		SellerName:    strings.TrimSpace(input.SellerName),
		SellerPhone:   strings.TrimSpace(input.SellerPhone),
		SellerEmail:   strings.TrimSpace(input.SellerEmail),
		Images:        filterMediaURLs(input.Images),
		VideoURL:      filterMediaURL(input.VideoURL),
		Status:        entity.PropertyStatusAvailable,
		AgentID:       actor.ID,
		AgentUsername: actor.Username,
		Views:         0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

type PropertyListInput struct {
	Type     string
	City     string
	Status   string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

// List serves the public listing. Status defaults to available unless the
// caller asks for "all" or names a specific status.
func (uc *PropertyUseCase) List(ctx context.Context, input PropertyListInput, limit, offset int) ([]*entity.Property, int64, error) {
	status := input.Status
	switch {
	case status == "":
		status = entity.PropertyStatusAvailable
	case status == "all":
		status = ""
	case !entity.ValidPropertyStatus(status):
		return nil, 0, errors.Validation("Invalid property status", nil)
	}

	if input.Type != "" && !entity.ValidPropertyType(input.Type) {
		return nil, 0, errors.Validation("Invalid property type", nil)
	}

	sort := input.Sort
	switch sort {
	case "", repository.PropertySortCreatedDesc:
		sort = repository.PropertySortCreatedDesc
	case repository.PropertySortPriceAsc, repository.PropertySortPriceDesc:
	default:
		return nil, 0, errors.Validation("Invalid sort order", nil)
	}

	filter := repository.PropertyFilter{
		Type:     input.Type,
		City:     input.City,
		Status:   status,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	return uc.propertyRepo.List(ctx, filter, sort, limit, offset)
}

func (uc *PropertyUseCase) ListByAgent(ctx context.Context, agentID string) ([]*entity.Property, error) {
	properties, _, err := uc.propertyRepo.List(ctx, repository.PropertyFilter{AgentID: agentID}, repository.PropertySortCreatedDesc, 0, 0)
	return properties, err
}

func (uc *PropertyUseCase) Update(ctx context.Context, actor *entity.User, id string, input PropertyInput) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(actor, property); err != nil {
		return nil, err
	}

	if !entity.ValidPropertyType(input.Type) {
		return nil, errors.Validation("Invalid property type", nil)
	}
	if input.Price <= 0 {
		return nil, errors.Validation("Price must be greater than zero", nil)
	}
	// Direct status overwrite is allowed and does not enforce the state
	// machine edges; an empty value keeps the current status.
	if input.Status != "" {
		if !entity.ValidPropertyStatus(input.Status) {
			return nil, errors.Validation("Invalid property status", nil)
		}
		property.Status = input.Status
	}

	property.Title = strings.TrimSpace(input.Title)
	property.Type = input.Type
	property.Price = input.Price
	property.Currency = input.Currency
	property.Description = input.Description
	property.City = strings.TrimSpace(input.City)
	property.Neighborhood = strings.TrimSpace(input.Neighborhood)
	property.Address = strings.TrimSpace(input.Address)
	property.Latitude = input.Latitude
	property.Longitude = input.Longitude
	property.SellerName = strings.TrimSpace(input.SellerName)
	property.SellerPhone = strings.TrimSpace(input.SellerPhone)
	property.SellerEmail = strings.TrimSpace(input.SellerEmail)
	property.Images = filterMediaURLs(input.Images)
	property.VideoURL = filterMediaURL(input.VideoURL)

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.authorize(actor, property); err != nil {
		return err
	}

	return uc.propertyRepo.Delete(ctx, id)
}

// authorize runs the ownership check after the agent-listing role gate
// passed: the owning agent, or anyone holding author-content, may edit or
// delete the listing. A plain agent only touches their own.
func (uc *PropertyUseCase) authorize(actor *entity.User, property *entity.Property) error {
	if property.AgentID == actor.ID {
		return nil
	}
	if service.Allows(actor.Role, service.CapabilityAuthorContent) {
		return nil
	}
	return errors.Forbidden("You do not own this listing", nil)
}

func (uc *PropertyUseCase) IncrementViews(ctx context.Context, id string) error {
	return uc.propertyRepo.IncrementViews(ctx, id)
}

// OverrideStatus is the admin escape hatch: any valid status value, no
// state-machine edge enforcement.
func (uc *PropertyUseCase) OverrideStatus(ctx context.Context, id string, status string) error {
	if !entity.ValidPropertyStatus(status) {
		return errors.Validation("Invalid property status", nil)
	}
	return uc.propertyRepo.UpdateStatus(ctx, id, status)
}
