package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

const attendanceCollection = "attendance"

type MongoAttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{coll: db.Collection(attendanceCollection)}
}

type mongoAttendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       int64              `bson:"date"`
	Status     string             `bson:"status"`
}

func (ma mongoAttendance) toDomain() *domain.Attendance {
	return &domain.Attendance{
		ID:         ma.ID.Hex(),
		EmployeeID: ma.EmployeeID,
		Date:       unixToTime(ma.Date),
		Status:     domain.AttendanceStatus(ma.Status),
	}
}

func (r *MongoAttendanceRepository) Insert(ctx context.Context, att *domain.Attendance) (*domain.Attendance, error) {
	res, err := r.coll.InsertOne(ctx, mongoAttendance{
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Unix(),
		Status:     string(att.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert attendance: unexpected id type %T", res.InsertedID)
	}

	created := *att
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoAttendanceRepository) FindByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]*domain.Attendance, error) {
	filter := bson.M{"employee_id": employeeID}
	dateRange := bson.M{}
	if from != nil {
		dateRange["$gte"] = from.Unix()
	}
	if to != nil {
		dateRange["$lte"] = to.Unix()
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Attendance{}
	for cursor.Next(ctx) {
		var ma mongoAttendance
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode attendance: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return out, nil
}
