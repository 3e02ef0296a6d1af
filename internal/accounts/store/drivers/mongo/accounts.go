package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sundialhq/sundial/internal/accounts/domain"
	"github.com/sundialhq/sundial/internal/accounts/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountsRepo struct {
	col *mongo.Collection
}

// accountDoc is the BSON shape of an account. Field names are part of the
// deployed data set, change them only with a migration.
type accountDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash,omitempty"`
	Kind             string             `bson:"kind"`
	SocialProvider   string             `bson:"social_provider,omitempty"`
	SocialProviderID string             `bson:"social_provider_id,omitempty"`
	IsVerified       bool               `bson:"is_verified"`
	CreatedAt        time.Time          `bson:"created_at"`
	LastLogin        *time.Time         `bson:"last_login,omitempty"`
	ResetCode        *string            `bson:"reset_code,omitempty"`
	ResetCodeExpires *time.Time         `bson:"reset_code_expires,omitempty"`
}

func toDoc(a domain.Account) accountDoc {
	return accountDoc{
		Name:             a.Name,
		Email:            a.Email,
		PasswordHash:     a.PasswordHash,
		Kind:             string(a.Kind),
		SocialProvider:   string(a.Provider),
		SocialProviderID: a.ProviderID,
		IsVerified:       a.Verified,
		CreatedAt:        a.CreatedAt.UTC(),
		LastLogin:        a.LastLogin,
		ResetCode:        a.ResetCode,
		ResetCodeExpires: a.ResetCodeExpires,
	}
}

func fromDoc(d accountDoc) domain.Account {
	return domain.Account{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		Kind:             domain.Kind(d.Kind),
		Provider:         domain.Provider(d.SocialProvider),
		ProviderID:       d.SocialProviderID,
		Verified:         d.IsVerified,
		CreatedAt:        d.CreatedAt,
		LastLogin:        d.LastLogin,
		ResetCode:        d.ResetCode,
		ResetCodeExpires: d.ResetCodeExpires,
	}
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return domain.Account{}, store.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *accountsRepo) findOne(ctx context.Context, filter bson.M) (domain.Account, error) {
	var doc accountDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Account{}, store.ErrNotFound
		}
		return domain.Account{}, err
	}
	return fromDoc(doc), nil
}

func (r *accountsRepo) Insert(ctx context.Context, a domain.Account) (string, error) {
	res, err := r.col.InsertOne(ctx, toDoc(a))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", store.ErrAlreadyExists
		}
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("mongo: unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *accountsRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{"last_login": at.UTC()},
	})
}

func (r *accountsRepo) SetResetCode(ctx context.Context, id string, code string, expires time.Time) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{
			"reset_code":         code,
			"reset_code_expires": expires.UTC(),
		},
	})
}

func (r *accountsRepo) SetPassword(ctx context.Context, id string, hash string) error {
	return r.updateByID(ctx, id, bson.M{
		"$set":   bson.M{"password_hash": hash},
		"$unset": bson.M{"reset_code": "", "reset_code_expires": ""},
	})
}

func (r *accountsRepo) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
