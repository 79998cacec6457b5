package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

const savingPlanCollection = "saving_plans"

// SavingPlanRepository persists saving plans in MongoDB, scoped to the
// owning user. Deposits are embedded in the plan document.
type SavingPlanRepository struct {
	coll *mongo.Collection
}

func NewSavingPlanRepository(db *mongo.Database) *SavingPlanRepository {
	return &SavingPlanRepository{coll: db.Collection(savingPlanCollection)}
}

func (r *SavingPlanRepository) Insert(ctx context.Context, p *domain.SavingPlan) (*domain.SavingPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *p
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SavingPlanRepository) FindByUser(ctx context.Context, userID string) ([]domain.SavingPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	plans := []domain.SavingPlan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *SavingPlanRepository) FindByID(ctx context.Context, userID, id string) (*domain.SavingPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.SavingPlan
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSavingPlanNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *SavingPlanRepository) Update(ctx context.Context, userID, id string, p *domain.SavingPlan) (*domain.SavingPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	updated := *p
	updated.ID = id
	updated.UserID = userID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id, "user_id": userID}, &updated)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSavingPlanNotFound
	}
	return &updated, nil
}

func (r *SavingPlanRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSavingPlanNotFound
	}
	return nil
}
