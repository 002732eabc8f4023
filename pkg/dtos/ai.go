package dtos

type AnalyzeRoutineDTO struct {
	ProductBarcodes []string `json:"productBarcodes"`
}

type RoutineAnalysis struct {
	OverallScore           int                 `json:"overallScore"`
	Strengths              []string            `json:"strengths"`
	Concerns               []string            `json:"concerns"`
	Recommendations        []string            `json:"recommendations"`
	IngredientInteractions map[string][]string `json:"ingredientInteractions"`
}

type AskProductDTO struct {
	ProductID uint   `json:"productId"`
	Question  string `json:"question"`
}

type ProductAdvice struct {
	Answer string `json:"answer"`
}
