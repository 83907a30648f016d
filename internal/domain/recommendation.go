package domain

// AIRecommendation is the typed result of a mood-to-scent request. The
// description is at most two sentences and ScentProfile carries 3-4 notes by
// contract with the model; neither is re-validated here.
type AIRecommendation struct {
	CandleName           string   `json:"candleName"`
	Description          string   `json:"description"`
	ScentProfile         []string `json:"scentProfile"`
	MoodMatch            string   `json:"moodMatch"`
	IntensityLevel       int      `json:"intensityLevel"`
	RecommendedProductID string   `json:"recommendedProductId,omitempty"`
}

// InventoryItem is the minimal product view embedded in the recommendation
// prompt so the model can ground its pick in the real catalog.
type InventoryItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
}
