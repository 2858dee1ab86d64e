package translator

import (
	"testing"

	"sitesnap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSellerPayload_PhoneFillsBothNumbers(t *testing.T) {
	payload := SellerPayload(entity.SellerUpdate{
		Name:  strPtr("Ama"),
		Phone: strPtr("+233200000000"),
	})

	assert.Equal(t, map[string]any{
		"name":            "Ama",
		"phone_number":    "+233200000000",
		"whatsapp_number": "+233200000000",
	}, payload)
}

func TestBusinessPayload_TemplateResolution(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want any
	}{
		{name: "template key", ids: []string{"tech-showcase"}, want: 4},
		{name: "numeric string", ids: []string{"9"}, want: 9},
		{name: "first resolvable wins", ids: []string{"nope", "beauty-glow"}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := BusinessPayload(entity.SellerUpdate{SelectedTemplateIDs: tt.ids})
			assert.Equal(t, tt.want, payload["template_id"])
		})
	}

	_, ok := BusinessPayload(entity.SellerUpdate{SelectedTemplateIDs: []string{"nope"}})["template_id"]
	assert.False(t, ok)
}

func TestProductPayload_NeverSendsAttributes(t *testing.T) {
	payload := ProductPayload(entity.Product{
		SellerID:     "s1",
		Name:         "Mug",
		Price:        12,
		Inventory:    entity.InventoryInStock,
		Attributes:   []entity.ProductAttribute{{Name: "Size", Values: []string{"S"}}},
		AttributeIDs: []string{"a1"},
		Visible:      1,
	})

	_, hasAttributes := payload["attributes"]
	_, hasCategory := payload["category_id"]
	assert.False(t, hasAttributes)
	assert.False(t, hasCategory)
	assert.Equal(t, "Mug", payload["product_name"])
	assert.Equal(t, "in stock", payload["inventory"])
	assert.Equal(t, true, payload["is_visible"])
	assert.Equal(t, []string{"a1"}, payload["attribute_ids"])
}

func TestProductUpdatePayload_OnlySetFields(t *testing.T) {
	hidden := 0
	empty := ""

	payload := ProductUpdatePayload(entity.ProductUpdate{Visible: &hidden, CategoryID: &empty})

	assert.Equal(t, map[string]any{"is_visible": false, "category_id": nil}, payload)
}
