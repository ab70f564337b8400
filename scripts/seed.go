package main

import (
	"context"
	"log"
	"os"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/database"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	"github.com/Prism-Clinical/prism-graphql-sub006/pkg/config"
)

type seedNode struct {
	nodeType   entities.NodeType
	title      string
	desc       string
	actionType *entities.ActionType
	factors    []string
	confidence float64
	children   []seedNode
}

func action(t entities.ActionType) *entities.ActionType {
	return &t
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	pathwayRepo := database.NewPathwayAdapter(pgClient)
	nodeRepo := database.NewPathwayNodeAdapter(pgClient)
	instanceRepo := database.NewInstanceAdapter(pgClient)
	selectionRepo := database.NewSelectionAdapter(pgClient)
	pathwayService := services.NewPathwayService(pathwayRepo, nodeRepo, instanceRepo, selectionRepo, nil)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				patient_pathway_selections,
				patient_pathway_instances,
				pathway_node_outcomes,
				pathway_nodes,
				clinical_pathways
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	pathways := []struct {
		pathway entities.ClinicalPathway
		tree    seedNode
	}{
		{
			pathway: entities.ClinicalPathway{
				Name:           "Type 2 Diabetes Initial Management",
				Description:    "First-line management for newly diagnosed type 2 diabetes",
				ConditionCodes: []string{"E11", "E11.9"},
				VersionLabel:   "2024.1",
				EvidenceSource: "ADA Standards of Care",
				EvidenceGrade:  "A",
				IsActive:       true,
				CreatedBy:      "seed",
			},
			tree: seedNode{
				nodeType:   entities.NodeTypeRoot,
				title:      "Newly diagnosed type 2 diabetes",
				confidence: 1.0,
				children: []seedNode{
					{
						nodeType:   entities.NodeTypeDecision,
						title:      "HbA1c below 9%?",
						factors:    []string{"hba1c"},
						confidence: 0.8,
						children: []seedNode{
							{
								nodeType:   entities.NodeTypeRecommendation,
								title:      "Start metformin monotherapy",
								desc:       "Metformin 500mg daily, titrate over 4 weeks",
								actionType: action(entities.ActionTypeMedication),
								confidence: 0.85,
							},
							{
								nodeType:   entities.NodeTypeRecommendation,
								title:      "Lifestyle modification program",
								desc:       "Dietary counselling and structured exercise referral",
								actionType: action(entities.ActionTypeLifestyle),
								confidence: 0.6,
							},
						},
					},
					{
						nodeType:   entities.NodeTypeBranch,
						title:      "HbA1c 9% or above",
						factors:    []string{"hba1c"},
						confidence: 0.7,
						children: []seedNode{
							{
								nodeType:   entities.NodeTypeRecommendation,
								title:      "Dual therapy and endocrinology referral",
								desc:       "Metformin plus second agent; refer to endocrinology",
								actionType: action(entities.ActionTypeReferral),
								confidence: 0.75,
							},
						},
					},
				},
			},
		},
		{
			pathway: entities.ClinicalPathway{
				Name:           "Hypertension Stage 1 Management",
				Description:    "Initial management for stage 1 hypertension",
				ConditionCodes: []string{"I10"},
				VersionLabel:   "2024.1",
				EvidenceSource: "ACC/AHA Guideline",
				EvidenceGrade:  "B",
				IsActive:       true,
				CreatedBy:      "seed",
			},
			tree: seedNode{
				nodeType:   entities.NodeTypeRoot,
				title:      "Stage 1 hypertension confirmed",
				confidence: 1.0,
				children: []seedNode{
					{
						nodeType:   entities.NodeTypeRecommendation,
						title:      "Lifestyle modification",
						desc:       "DASH diet, sodium reduction, weight management",
						actionType: action(entities.ActionTypeLifestyle),
						confidence: 0.8,
					},
					{
						nodeType:   entities.NodeTypeRecommendation,
						title:      "Start ACE inhibitor",
						desc:       "Lisinopril 10mg daily when ASCVD risk is elevated",
						actionType: action(entities.ActionTypeMedication),
						factors:    []string{"ascvd_risk"},
						confidence: 0.65,
					},
					{
						nodeType:   entities.NodeTypeRecommendation,
						title:      "Follow-up blood pressure check",
						desc:       "Recheck in 4 weeks",
						actionType: action(entities.ActionTypeFollowUp),
						confidence: 0.9,
					},
				},
			},
		},
	}

	for _, seed := range pathways {
		p := seed.pathway
		if err := pathwayService.Create(ctx, &p); err != nil {
			log.Printf("Failed to create pathway %s: %v", p.Name, err)
			continue
		}

		if err := createTree(ctx, pathwayService, p.ID, seed.tree, nil, 0); err != nil {
			log.Printf("Failed to seed tree for pathway %s: %v", p.Name, err)
			continue
		}

		if _, err := pathwayService.Publish(ctx, p.ID); err != nil {
			log.Printf("Failed to publish pathway %s: %v", p.Name, err)
		}
	}

	log.Println("Seeding completed successfully")
}

func createTree(ctx context.Context, svc *services.PathwayService, pathwayID string, seed seedNode, parentID *string, sortOrder int) error {
	node := &entities.PathwayNode{
		PathwayID:       pathwayID,
		ParentNodeID:    parentID,
		NodeType:        seed.nodeType,
		Title:           seed.title,
		Description:     seed.desc,
		ActionType:      seed.actionType,
		DecisionFactors: seed.factors,
		SortOrder:       sortOrder,
		BaseConfidence:  seed.confidence,
		IsActive:        true,
	}
	if err := svc.CreateNode(ctx, node); err != nil {
		return err
	}

	for i, child := range seed.children {
		if err := createTree(ctx, svc, pathwayID, child, &node.ID, i); err != nil {
			return err
		}
	}
	return nil
}
