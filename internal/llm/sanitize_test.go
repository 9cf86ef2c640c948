package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
)

const validReply = `{
  "offers": [
    {
      "storeName": "Aldi Nord",
      "productName": "Butter",
      "brand": "Kerrygold",
      "quantity": "250g",
      "price": 1.99,
      "originalPrice": "2.49",
      "offerDateStart": "2026-08-24",
      "offerDateEnd": "2026-08-30"
    },
    {
      "storeName": "Aldi Nord",
      "productName": "Bananas",
      "brand": null,
      "quantity": "1kg",
      "price": 1,
      "originalPrice": null,
      "offerDateStart": "2026-08-24",
      "offerDateEnd": "2026-08-30"
    }
  ]
}`

func TestDecodeOffersValidReply(t *testing.T) {
	offers, err := DecodeOffers([]byte(validReply))
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, "Aldi Nord", offers[0].StoreName)
	assert.Equal(t, "Butter", offers[0].ProductName)
	require.NotNil(t, offers[0].Brand)
	assert.Equal(t, "Kerrygold", *offers[0].Brand)
	assert.Equal(t, "1.99", offers[0].Price.String())
	require.NotNil(t, offers[0].OriginalPrice)
	assert.Equal(t, "2.49", *offers[0].OriginalPrice)

	assert.Nil(t, offers[1].Brand)
	assert.Nil(t, offers[1].OriginalPrice)
	assert.Equal(t, "1", offers[1].Price.String())
}

func TestDecodeOffersFenceStrippingMatchesUnfenced(t *testing.T) {
	fenced := "```json\n" + validReply + "\n```"

	plain, err := DecodeOffers([]byte(validReply))
	require.NoError(t, err)
	stripped, err := DecodeOffers([]byte(fenced))
	require.NoError(t, err)

	assert.Equal(t, plain, stripped)
}

func TestStripCodeFenceIdempotent(t *testing.T) {
	fenced := []byte("```json\n{\"offers\": []}\n```")
	once := StripCodeFence(fenced)
	twice := StripCodeFence(once)
	assert.Equal(t, string(once), string(twice))
	assert.Equal(t, `{"offers": []}`, string(once))
}

func TestStripCodeFenceHandlesLoneMarkers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing only", "{\"offers\": []}\n```", `{"offers": []}`},
		{"leading only", "```json\n{\"offers\": []}", `{"offers": []}`},
		{"bare fence pair", "```\n{\"offers\": []}\n```", `{"offers": []}`},
		{"unfenced", `{"offers": []}`, `{"offers": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripCodeFence([]byte(tt.in))))
		})
	}
}

func TestDecodeOffersEmptyArrayIsSuccess(t *testing.T) {
	offers, err := DecodeOffers([]byte(`{"offers": []}`))
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestDecodeOffersParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty content", ""},
		{"whitespace only", "   \n  "},
		{"not json", "no offers on this page, sorry"},
		{"valid json without offers key", `{}`},
		{"offers not an array", `{"offers": "none"}`},
		{"element missing required field", `{"offers": [{"storeName": "Lidl", "productName": "Milk", "brand": null, "quantity": "1l", "price": 0.99, "originalPrice": null, "offerDateStart": "2026-08-24"}]}`},
		{"element with extra field", `{"offers": [{"storeName": "Lidl", "productName": "Milk", "brand": null, "quantity": "1l", "price": 0.99, "originalPrice": null, "offerDateStart": "2026-08-24", "offerDateEnd": "2026-08-30", "comment": "cheap"}]}`},
		{"price not a number", `{"offers": [{"storeName": "Lidl", "productName": "Milk", "brand": null, "quantity": "1l", "price": "0.99", "originalPrice": null, "offerDateStart": "2026-08-24", "offerDateEnd": "2026-08-30"}]}`},
		{"top-level extra key", `{"offers": [], "note": "done"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOffers([]byte(tt.content))
			require.Error(t, err)
			assert.Equal(t, common.KindParse, common.KindOf(err))
		})
	}
}

func TestBuildOffersJSONSchemaIsStrict(t *testing.T) {
	schema := BuildOffersJSONSchema()

	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"offers"}, schema["required"])

	offersProp := schema["properties"].(map[string]any)["offers"].(map[string]any)
	item := offersProp["items"].(map[string]any)
	assert.Equal(t, false, item["additionalProperties"])
	assert.ElementsMatch(t, []string{
		"storeName", "productName", "brand", "quantity",
		"price", "originalPrice", "offerDateStart", "offerDateEnd",
	}, item["required"])
}
