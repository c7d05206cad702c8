package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Catalog object types as reported by the remote catalog API.
const (
	TypeCategory      = "CATEGORY"
	TypeTax           = "TAX"
	TypeModifierList  = "MODIFIER_LIST"
	TypeModifier      = "MODIFIER"
	TypeItem          = "ITEM"
	TypeItemVariation = "ITEM_VARIATION"
	TypeDiscount      = "DISCOUNT"
	TypeImage         = "IMAGE"
)

// SyncOrder lists every catalog object type in the dependency order syncs
// must process them: items reference categories, taxes and modifier lists by
// id, variations and images reference items, so parents are loaded first to
// minimise ephemeral dangling references while pages are still arriving.
var SyncOrder = []string{
	TypeCategory,
	TypeTax,
	TypeModifierList,
	TypeModifier,
	TypeItem,
	TypeItemVariation,
	TypeDiscount,
	TypeImage,
}

// KnownType reports whether objectType is one of the catalog object types
// this engine synchronises.
func KnownType(objectType string) bool {
	for _, t := range SyncOrder {
		if t == objectType {
			return true
		}
	}
	return false
}

// CatalogObject is one typed, versioned entity of the remote product catalog.
// It is a tagged union: Type selects which of the *Data pointers is set.
//
// ID is remote-assigned and stable. Version is remote-authoritative and
// monotonically increasing; it participates in the remote system's
// optimistic-concurrency control, so every write must carry the version it
// expects to overwrite. IsDeleted marks soft-deleted objects: the remote
// never physically removes rows, it only flags them.
type CatalogObject struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Version   int64     `json:"version,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	IsDeleted bool      `json:"is_deleted,omitempty"`

	ItemData          *ItemData          `json:"item_data,omitempty"`
	CategoryData      *CategoryData      `json:"category_data,omitempty"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
	ModifierListData  *ModifierListData  `json:"modifier_list_data,omitempty"`
	ModifierData      *ModifierData      `json:"modifier_data,omitempty"`
	TaxData           *TaxData           `json:"tax_data,omitempty"`
	DiscountData      *DiscountData      `json:"discount_data,omitempty"`
	ImageData         *ImageData         `json:"image_data,omitempty"`
}

// Money is a monetary amount in the smallest denomination of its currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ItemData is the payload of an ITEM object. Variations are full embedded
// catalog objects carrying their own independent versions; a write touching
// the item must include the current version of every variation it embeds
// (hierarchical versioning).
type ItemData struct {
	Name         string          `json:"name,omitempty"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	TaxIDs       []string        `json:"tax_ids,omitempty"`
	ModifierIDs  []string        `json:"modifier_list_ids,omitempty"`
	ImageIDs     []string        `json:"image_ids,omitempty"`
	Variations   []CatalogObject `json:"variations,omitempty"`
	ProductType  string          `json:"product_type,omitempty"`
	IsArchived   bool            `json:"is_archived,omitempty"`
	Abbreviation string          `json:"abbreviation,omitempty"`
}

// CategoryData is the payload of a CATEGORY object.
type CategoryData struct {
	Name             string `json:"name,omitempty"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`
}

// ItemVariationData is the payload of an ITEM_VARIATION object.
type ItemVariationData struct {
	ItemID      string `json:"item_id,omitempty"`
	Name        string `json:"name,omitempty"`
	SKU         string `json:"sku,omitempty"`
	UPC         string `json:"upc,omitempty"`
	Ordinal     int    `json:"ordinal,omitempty"`
	PricingType string `json:"pricing_type,omitempty"`
	PriceMoney  *Money `json:"price_money,omitempty"`
}

// ModifierListData is the payload of a MODIFIER_LIST object. Like item
// variations, the embedded modifiers are independently versioned objects.
type ModifierListData struct {
	Name          string          `json:"name,omitempty"`
	SelectionType string          `json:"selection_type,omitempty"`
	Modifiers     []CatalogObject `json:"modifiers,omitempty"`
}

// ModifierData is the payload of a MODIFIER object.
type ModifierData struct {
	Name           string `json:"name,omitempty"`
	ModifierListID string `json:"modifier_list_id,omitempty"`
	Ordinal        int    `json:"ordinal,omitempty"`
	PriceMoney     *Money `json:"price_money,omitempty"`
}

// TaxData is the payload of a TAX object.
type TaxData struct {
	Name             string `json:"name,omitempty"`
	CalculationPhase string `json:"calculation_phase,omitempty"`
	InclusionType    string `json:"inclusion_type,omitempty"`
	Percentage       string `json:"percentage,omitempty"`
	Enabled          bool   `json:"enabled,omitempty"`
}

// DiscountData is the payload of a DISCOUNT object.
type DiscountData struct {
	Name         string `json:"name,omitempty"`
	DiscountType string `json:"discount_type,omitempty"`
	Percentage   string `json:"percentage,omitempty"`
	AmountMoney  *Money `json:"amount_money,omitempty"`
}

// ImageData is the payload of an IMAGE object. URL may stay stable while the
// content behind it changes, which is why cached media is keyed by the image
// object's remote id rather than by URL.
type ImageData struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Name returns the display name hoisted from the active payload variant,
// or "" when the variant carries no name.
func (o *CatalogObject) Name() string {
	switch {
	case o.ItemData != nil:
		return o.ItemData.Name
	case o.CategoryData != nil:
		return o.CategoryData.Name
	case o.ItemVariationData != nil:
		return o.ItemVariationData.Name
	case o.ModifierListData != nil:
		return o.ModifierListData.Name
	case o.ModifierData != nil:
		return o.ModifierData.Name
	case o.TaxData != nil:
		return o.TaxData.Name
	case o.DiscountData != nil:
		return o.DiscountData.Name
	case o.ImageData != nil:
		return o.ImageData.Name
	}
	return ""
}

// ParentID returns the hoisted parent reference: the category id for items,
// the owning item id for variations, the owning modifier list id for
// modifiers and the parent category id for categories.
func (o *CatalogObject) ParentID() string {
	switch {
	case o.ItemData != nil:
		return o.ItemData.CategoryID
	case o.ItemVariationData != nil:
		return o.ItemVariationData.ItemID
	case o.ModifierData != nil:
		return o.ModifierData.ModifierListID
	case o.CategoryData != nil:
		return o.CategoryData.ParentCategoryID
	}
	return ""
}

// SKU returns the hoisted SKU for variations, or "" for every other variant.
func (o *CatalogObject) SKU() string {
	if o.ItemVariationData != nil {
		return o.ItemVariationData.SKU
	}
	return ""
}

// Price returns the hoisted price for variants that carry one. The second
// return value reports whether a price is present.
func (o *CatalogObject) Price() (Money, bool) {
	switch {
	case o.ItemVariationData != nil && o.ItemVariationData.PriceMoney != nil:
		return *o.ItemVariationData.PriceMoney, true
	case o.ModifierData != nil && o.ModifierData.PriceMoney != nil:
		return *o.ModifierData.PriceMoney, true
	case o.DiscountData != nil && o.DiscountData.AmountMoney != nil:
		return *o.DiscountData.AmountMoney, true
	}
	return Money{}, false
}

// ImageIDs returns the ids of every IMAGE object referenced by this object.
// For an IMAGE the object's own id is returned, so cache eviction can treat
// all variants uniformly.
func (o *CatalogObject) ImageIDs() []string {
	switch {
	case o.Type == TypeImage:
		return []string{o.ID}
	case o.ItemData != nil:
		return o.ItemData.ImageIDs
	}
	return nil
}

// PayloadJSON serialises the active payload variant to the opaque blob stored
// in the local database. Returns nil for an object with no payload.
func (o *CatalogObject) PayloadJSON() ([]byte, error) {
	var payload any
	switch {
	case o.ItemData != nil:
		payload = o.ItemData
	case o.CategoryData != nil:
		payload = o.CategoryData
	case o.ItemVariationData != nil:
		payload = o.ItemVariationData
	case o.ModifierListData != nil:
		payload = o.ModifierListData
	case o.ModifierData != nil:
		payload = o.ModifierData
	case o.TaxData != nil:
		payload = o.TaxData
	case o.DiscountData != nil:
		payload = o.DiscountData
	case o.ImageData != nil:
		payload = o.ImageData
	default:
		return nil, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", o.Type, err)
	}
	return raw, nil
}

// DecodePayload populates the payload variant selected by o.Type from the
// opaque blob previously produced by [CatalogObject.PayloadJSON]. An empty
// blob leaves the object without a payload.
func (o *CatalogObject) DecodePayload(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	var dst any
	switch o.Type {
	case TypeItem:
		o.ItemData = &ItemData{}
		dst = o.ItemData
	case TypeCategory:
		o.CategoryData = &CategoryData{}
		dst = o.CategoryData
	case TypeItemVariation:
		o.ItemVariationData = &ItemVariationData{}
		dst = o.ItemVariationData
	case TypeModifierList:
		o.ModifierListData = &ModifierListData{}
		dst = o.ModifierListData
	case TypeModifier:
		o.ModifierData = &ModifierData{}
		dst = o.ModifierData
	case TypeTax:
		o.TaxData = &TaxData{}
		dst = o.TaxData
	case TypeDiscount:
		o.DiscountData = &DiscountData{}
		dst = o.DiscountData
	case TypeImage:
		o.ImageData = &ImageData{}
		dst = o.ImageData
	default:
		return fmt.Errorf("decode payload: unknown object type %q", o.Type)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", o.Type, err)
	}
	return nil
}

// Validate checks the minimal shape every remote object must have before it
// is accepted into the local store.
func (o *CatalogObject) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("catalog object without id")
	}
	if !KnownType(o.Type) {
		return fmt.Errorf("catalog object %s: unknown type %q", o.ID, o.Type)
	}
	return nil
}
