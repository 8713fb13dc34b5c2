package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/config"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	if err := responseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create response indexes: %v", err)
	}

	questionnaire := &model.Questionnaire{
		Title:     "Croissant Comparison Tasting",
		CreatedBy: "admin_seed",
		Brands: []model.Brand{
			{Name: "Maison Laurent"},
			{Name: "Boulangerie du Coin"},
			{Name: "Le Fournil"},
		},
		Criteria: []model.Criterion{
			{Key: "appearance", Description: "Color, lamination, and overall visual appeal"},
			{Key: "texture", Description: "Flakiness of the crust and softness of the crumb"},
			{Key: "flavor", Description: "Butter flavor, balance, and aftertaste"},
			{Key: "aroma", Description: "Smell straight out of the bag"},
		},
	}

	id, err := questionnaireRepo.Create(ctx, questionnaire)
	if err != nil {
		log.Fatalf("Failed to insert questionnaire: %v", err)
	}

	fmt.Printf("Successfully created questionnaire '%s' (%s) with %d brands and %d criteria\n",
		questionnaire.Title, id, len(questionnaire.Brands), len(questionnaire.Criteria))
}
