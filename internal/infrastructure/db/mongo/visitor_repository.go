package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

const collectionVisitors = "visitors"

type VisitorRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewVisitorRepository(db *mongo.Database) *VisitorRepository {
	return &VisitorRepository{col: db.Collection(collectionVisitors), now: time.Now}
}

type mongoVisitor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	MiddleInitial   string             `bson:"middle_initial"`
	Purpose         string             `bson:"purpose"`
	PurposeOther    string             `bson:"purpose_other"`
	Department      string             `bson:"department"`
	DepartmentOther string             `bson:"department_other"`
	ContactNumber   string             `bson:"contact_number"`
	Email           string             `bson:"email"`
	Date            string             `bson:"date"`
	Time            string             `bson:"time"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (mv mongoVisitor) toDomain() *domain.Visitor {
	return &domain.Visitor{
		ID:              mv.ID.Hex(),
		FirstName:       mv.FirstName,
		LastName:        mv.LastName,
		MiddleInitial:   mv.MiddleInitial,
		Purpose:         mv.Purpose,
		PurposeOther:    mv.PurposeOther,
		Department:      mv.Department,
		DepartmentOther: mv.DepartmentOther,
		ContactNumber:   mv.ContactNumber,
		Email:           mv.Email,
		Date:            mv.Date,
		Time:            mv.Time,
		CreatedAt:       mv.CreatedAt.UTC(),
	}
}

// Create inserts a new visitor document, stamping created_at on the way in.
func (r *VisitorRepository) Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoVisitor{
		ID:              primitive.NewObjectID(),
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		MiddleInitial:   v.MiddleInitial,
		Purpose:         v.Purpose,
		PurposeOther:    v.PurposeOther,
		Department:      v.Department,
		DepartmentOther: v.DepartmentOther,
		ContactNumber:   v.ContactNumber,
		Email:           v.Email,
		Date:            v.Date,
		Time:            v.Time,
		// BSON dates carry milliseconds; truncate so the response matches a later read.
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert visitor: %w", err)
	}
	return doc.toDomain(), nil
}

// ListNewestFirst returns every visitor sorted by created_at then _id, both descending.
func (r *VisitorRepository) ListNewestFirst(ctx context.Context) ([]*domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find visitors: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoVisitor
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode visitors: %w", err)
	}

	visitors := make([]*domain.Visitor, len(docs))
	for i, d := range docs {
		visitors[i] = d.toDomain()
	}
	return visitors, nil
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *VisitorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
	return err
}
