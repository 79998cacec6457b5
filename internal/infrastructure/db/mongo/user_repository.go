package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists user accounts in MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type companyDoc struct {
	Name        string `bson:"name,omitempty"`
	Website     string `bson:"website,omitempty"`
	Address     string `bson:"address,omitempty"`
	Description string `bson:"description,omitempty"`
	LogoURL     string `bson:"logo_url,omitempty"`
	TaxID       string `bson:"tax_id,omitempty"`
}

type preferencesDoc struct {
	Currency string `bson:"currency"`
	Language string `bson:"language"`
	Theme    string `bson:"theme"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Firstname    string             `bson:"firstname"`
	Lastname     string             `bson:"lastname"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	DateOfBirth  time.Time          `bson:"date_of_birth"`
	Kind         string             `bson:"user_type"`
	Company      *companyDoc        `bson:"company,omitempty"`
	Preferences  preferencesDoc     `bson:"preferences"`
	PasswordHash string             `bson:"password_hash"`

	EmailVerified bool      `bson:"email_verified"`
	OTPCode       string    `bson:"otp_code,omitempty"`
	OTPExpiresAt  time.Time `bson:"otp_expires_at,omitempty"`

	ResetOTP          string    `bson:"reset_otp,omitempty"`
	ResetOTPExpiresAt time.Time `bson:"reset_otp_expires_at,omitempty"`

	LoginAttempts int  `bson:"login_attempts"`
	IsLocked      bool `bson:"is_locked"`

	RefreshToken          string    `bson:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `bson:"refresh_token_expires_at,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(user)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	// An empty filter value would match accounts that never logged in.
	if token == "" {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"refresh_token": token})
}

// Save persists every mutable field of the account.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(user)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// IncrementLoginAttempts bumps the counter with an atomic $inc and returns
// the post-increment value, so two concurrent failed logins cannot lose an
// update.
func (r *UserRepository) IncrementLoginAttempts(ctx context.Context, id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"login_attempts": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("increment login attempts: %w", err)
	}
	return doc.LoginAttempts, nil
}

func (r *UserRepository) Lock(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_locked": true}})
	if err != nil {
		return fmt.Errorf("lock user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index. Email uniqueness is enforced
// here, not in application code.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "refresh_token", Value: 1}}},
	})
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromDoc(&doc), nil
}

func toDoc(u *domain.User) *userDoc {
	doc := &userDoc{
		Firstname:             u.Firstname,
		Lastname:              u.Lastname,
		Email:                 u.Email,
		Phone:                 u.Phone,
		DateOfBirth:           u.DateOfBirth,
		Kind:                  string(u.Kind),
		Preferences:           preferencesDoc(u.Preferences),
		PasswordHash:          u.PasswordHash,
		EmailVerified:         u.EmailVerified,
		OTPCode:               u.OTPCode,
		OTPExpiresAt:          u.OTPExpiresAt,
		ResetOTP:              u.ResetOTP,
		ResetOTPExpiresAt:     u.ResetOTPExpiresAt,
		LoginAttempts:         u.LoginAttempts,
		IsLocked:              u.IsLocked,
		RefreshToken:          u.RefreshToken,
		RefreshTokenExpiresAt: u.RefreshTokenExpiresAt,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
	if u.Company != nil {
		doc.Company = &companyDoc{
			Name:        u.Company.Name,
			Website:     u.Company.Website,
			Address:     u.Company.Address,
			Description: u.Company.Description,
			LogoURL:     u.Company.LogoURL,
			TaxID:       u.Company.TaxID,
		}
	}
	return doc
}

func fromDoc(doc *userDoc) *domain.User {
	u := &domain.User{
		ID:                    doc.ID.Hex(),
		Firstname:             doc.Firstname,
		Lastname:              doc.Lastname,
		Email:                 doc.Email,
		Phone:                 doc.Phone,
		DateOfBirth:           doc.DateOfBirth,
		Kind:                  domain.AccountKind(doc.Kind),
		Preferences:           domain.Preferences(doc.Preferences),
		PasswordHash:          doc.PasswordHash,
		EmailVerified:         doc.EmailVerified,
		OTPCode:               doc.OTPCode,
		OTPExpiresAt:          doc.OTPExpiresAt,
		ResetOTP:              doc.ResetOTP,
		ResetOTPExpiresAt:     doc.ResetOTPExpiresAt,
		LoginAttempts:         doc.LoginAttempts,
		IsLocked:              doc.IsLocked,
		RefreshToken:          doc.RefreshToken,
		RefreshTokenExpiresAt: doc.RefreshTokenExpiresAt,
		CreatedAt:             doc.CreatedAt,
		UpdatedAt:             doc.UpdatedAt,
	}
	if doc.Company != nil {
		u.Company = &domain.CompanyProfile{
			Name:        doc.Company.Name,
			Website:     doc.Company.Website,
			Address:     doc.Company.Address,
			Description: doc.Company.Description,
			LogoURL:     doc.Company.LogoURL,
			TaxID:       doc.Company.TaxID,
		}
	}
	return u
}
