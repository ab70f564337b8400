package resolvers

import (
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/generated"
)

const defaultPageSize = 20

// toPatientContext converts the GraphQL input into the domain snapshot,
// folding the lab value list into a code-keyed map
func toPatientContext(in *generated.PatientContextInput) *entities.PatientContext {
	if in == nil {
		return nil
	}

	pctx := &entities.PatientContext{
		PatientID:       in.PatientID,
		ProviderID:      strOrEmpty(in.ProviderID),
		ConditionCodes:  in.ConditionCodes,
		Age:             in.Age,
		Sex:             in.Sex,
		MedicationCodes: in.MedicationCodes,
		LabCodes:        in.LabCodes,
		Comorbidities:   in.Comorbidities,
		RiskFactors:     in.RiskFactors,
		ClinicalNotes:   in.ClinicalNotes,
	}

	if len(in.LabValues) > 0 {
		pctx.LabValues = make(map[string]float64, len(in.LabValues))
		for _, lv := range in.LabValues {
			pctx.LabValues[lv.Code] = lv.Value
		}
	}

	return pctx
}

// toEditorNode converts the recursive editor input into the domain tree
func toEditorNode(in *generated.EditorNodeInput) *entities.EditorNode {
	if in == nil {
		return nil
	}

	node := &entities.EditorNode{
		TempID:              in.TempID,
		ID:                  in.ID,
		IsNew:               in.IsNew,
		IsModified:          in.IsModified,
		NodeType:            in.NodeType,
		Title:               in.Title,
		Description:         strOrEmpty(in.Description),
		ActionType:          in.ActionType,
		DecisionFactors:     in.DecisionFactors,
		SuggestedTemplateID: in.SuggestedTemplateID,
		BaseConfidence:      floatOr(in.BaseConfidence, 0.5),
		IsActive:            boolOr(in.IsActive, true),
	}

	for _, child := range in.Children {
		node.Children = append(node.Children, toEditorNode(child))
	}

	return node
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func intOr(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}

func floatOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}
