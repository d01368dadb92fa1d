package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

const employeeCollection = "employees"

type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(employeeCollection)}
}

type mongoEmployee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Department    string             `bson:"department"`
	Phone         string             `bson:"phone,omitempty"`
	Address       string             `bson:"address,omitempty"`
	MaritalStatus string             `bson:"marital_status,omitempty"`
	Education     string             `bson:"education,omitempty"`
	CompanyRole   string             `bson:"company_role,omitempty"`
	Salary        float64            `bson:"salary,omitempty"`
	Photo         string             `bson:"photo,omitempty"`
	Username      string             `bson:"username,omitempty"`
	JoinedDate    int64              `bson:"joined_date"`
	CreatedAt     int64              `bson:"created_at"`
}

func toMongoEmployee(e *domain.Employee) mongoEmployee {
	return mongoEmployee{
		Name:          e.Name,
		Email:         e.Email,
		Department:    e.Department,
		Phone:         e.Phone,
		Address:       e.Address,
		MaritalStatus: e.MaritalStatus,
		Education:     e.Education,
		CompanyRole:   e.CompanyRole,
		Salary:        e.Salary,
		Photo:         e.Photo,
		Username:      e.Username,
		JoinedDate:    e.JoinedDate.Unix(),
		CreatedAt:     e.CreatedAt.Unix(),
	}
}

func (me mongoEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:            me.ID.Hex(),
		Name:          me.Name,
		Email:         me.Email,
		Department:    me.Department,
		Phone:         me.Phone,
		Address:       me.Address,
		MaritalStatus: me.MaritalStatus,
		Education:     me.Education,
		CompanyRole:   me.CompanyRole,
		Salary:        me.Salary,
		Photo:         me.Photo,
		Username:      me.Username,
		JoinedDate:    unixToTime(me.JoinedDate),
		CreatedAt:     unixToTime(me.CreatedAt),
	}
}

// containsRegex builds a case-insensitive substring match with the needle
// escaped, so user input never becomes a regex operator.
func containsRegex(needle string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}
}

func (r *MongoEmployeeRepository) FindPage(ctx context.Context, search string, page, size int) (*domain.EmployeePage, error) {
	filter := bson.M{}
	if search != "" {
		or := []bson.M{
			{"name": containsRegex(search)},
			{"department": containsRegex(search)},
			{"company_role": containsRegex(search)},
		}
		if oid, err := primitive.ObjectIDFromHex(search); err == nil {
			or = append(or, bson.M{"_id": oid})
		}
		filter["$or"] = or
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cursor.Close(ctx)

	content := make([]*domain.Employee, 0, size)
	for cursor.Next(ctx) {
		var me mongoEmployee
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		content = append(content, me.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &domain.EmployeePage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoEmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoEmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	var me mongoEmployee
	if err := r.coll.FindOne(ctx, filter).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return me.toDomain(), nil
}

func (r *MongoEmployeeRepository) SearchByName(ctx context.Context, name string) ([]*domain.Employee, error) {
	return r.findMany(ctx, bson.M{"name": containsRegex(name)})
}

func (r *MongoEmployeeRepository) SearchByDepartment(ctx context.Context, department string) ([]*domain.Employee, error) {
	return r.findMany(ctx, bson.M{"department": containsRegex(department)})
}

func (r *MongoEmployeeRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Employee, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Employee{}
	for cursor.Next(ctx) {
		var me mongoEmployee
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		out = append(out, me.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return out, nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	res, err := r.coll.InsertOne(ctx, toMongoEmployee(emp))
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert employee: unexpected id type %T", res.InsertedID)
	}

	created := *emp
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	oid, err := primitive.ObjectIDFromHex(emp.ID)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	me := toMongoEmployee(emp)
	me.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, me)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
