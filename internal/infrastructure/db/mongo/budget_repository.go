package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

const budgetCollection = "budgets"

// BudgetRepository persists budgets in MongoDB, scoped to the owning user.
type BudgetRepository struct {
	coll *mongo.Collection
}

func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{coll: db.Collection(budgetCollection)}
}

func (r *BudgetRepository) Insert(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *b
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BudgetRepository) FindByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	budgets := []domain.Budget{}
	if err := cur.All(ctx, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetRepository) FindByID(ctx context.Context, userID, id string) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Budget
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) Update(ctx context.Context, userID, id string, b *domain.Budget) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	updated := *b
	updated.ID = id
	updated.UserID = userID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id, "user_id": userID}, &updated)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBudgetNotFound
	}
	return &updated, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}
