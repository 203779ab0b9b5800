// Package mongodb persists every back-office entity. One repository owns the
// client; collections are resolved per call.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mekdelawit/paperops/internal/domain/models"
)

const (
	collSuppliers   = "suppliers"
	collCollections = "collection_transactions"
	collEvaluations = "site_evaluation_reports"
	collInventory   = "store_inventory"
	collSales       = "inventory_sales"
	collDayEntries  = "mama_day_entries"
	collAccounts    = "bank_accounts"
)

// MongoRepository is the MongoDB-backed store for all entities.
type MongoRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoRepository connects to MongoDB and verifies the connection.
func NewMongoRepository(ctx context.Context, uri string, dbName string) (*MongoRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoRepository{client: client, dbName: dbName}, nil
}

// Close disconnects the underlying client.
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepository) coll(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// ListSuppliers returns all suppliers, newest first.
func (r *MongoRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	out := []models.Supplier{}
	if err := r.findAll(ctx, collSuppliers, &out); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return out, nil
}

// InsertSupplier stores a new supplier and returns it with its assigned id.
func (r *MongoRepository) InsertSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	s.CreatedAt = time.Now().UTC()
	res, err := r.coll(collSuppliers).InsertOne(ctx, s)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("insert supplier: %w", err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

// ListCollections returns all collection transactions, newest first.
func (r *MongoRepository) ListCollections(ctx context.Context) ([]models.CollectionTransaction, error) {
	out := []models.CollectionTransaction{}
	if err := r.findAll(ctx, collCollections, &out); err != nil {
		return nil, fmt.Errorf("list collection transactions: %w", err)
	}
	return out, nil
}

// InsertCollection stores a collection transaction.
func (r *MongoRepository) InsertCollection(ctx context.Context, tx models.CollectionTransaction) (models.CollectionTransaction, error) {
	tx.CreatedAt = time.Now().UTC()
	res, err := r.coll(collCollections).InsertOne(ctx, tx)
	if err != nil {
		return models.CollectionTransaction{}, fmt.Errorf("insert collection transaction: %w", err)
	}
	tx.ID = res.InsertedID.(primitive.ObjectID)
	return tx, nil
}

// ListEvaluations returns all site evaluation reports, newest first.
func (r *MongoRepository) ListEvaluations(ctx context.Context) ([]models.SiteEvaluationReport, error) {
	out := []models.SiteEvaluationReport{}
	if err := r.findAll(ctx, collEvaluations, &out); err != nil {
		return nil, fmt.Errorf("list site evaluation reports: %w", err)
	}
	return out, nil
}

// InsertEvaluation stores a site evaluation report.
func (r *MongoRepository) InsertEvaluation(ctx context.Context, report models.SiteEvaluationReport) (models.SiteEvaluationReport, error) {
	report.CreatedAt = time.Now().UTC()
	res, err := r.coll(collEvaluations).InsertOne(ctx, report)
	if err != nil {
		return models.SiteEvaluationReport{}, fmt.Errorf("insert site evaluation report: %w", err)
	}
	report.ID = res.InsertedID.(primitive.ObjectID)
	return report, nil
}

// ListInventory returns the stock snapshot for every paper type.
func (r *MongoRepository) ListInventory(ctx context.Context) ([]models.StoreInventory, error) {
	cursor, err := r.coll(collInventory).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "type", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	out := []models.StoreInventory{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return out, nil
}

// GetInventoryByType returns the stock item for one paper type. A missing
// item comes back as a zeroed snapshot for that type, not an error, so
// intake into a never-seen type just works.
func (r *MongoRepository) GetInventoryByType(ctx context.Context, paperType string) (models.StoreInventory, error) {
	var item models.StoreInventory
	err := r.coll(collInventory).FindOne(ctx, bson.M{"type": paperType}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return models.StoreInventory{Type: paperType, Name: models.PaperTypeNames[paperType]}, nil
	}
	if err != nil {
		return models.StoreInventory{}, fmt.Errorf("get inventory %s: %w", paperType, err)
	}
	return item, nil
}

// UpsertInventories writes back a set of stock items keyed by paper type
// in one bulk write, so a mutation touching several types lands together.
func (r *MongoRepository) UpsertInventories(ctx context.Context, items []models.StoreInventory) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, len(items))
	for i, item := range items {
		item.UpdatedAt = now
		item.ID = primitive.NilObjectID
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"type": item.Type}).
			SetReplacement(item).
			SetUpsert(true)
	}
	if _, err := r.coll(collInventory).BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("upsert %d inventory items: %w", len(items), err)
	}
	return nil
}

// ResetMonthActivity zeroes the current-month counters on every stock item.
func (r *MongoRepository) ResetMonthActivity(ctx context.Context) error {
	_, err := r.coll(collInventory).UpdateMany(ctx, bson.M{}, bson.M{
		"$set": bson.M{
			"current_month.collected": 0.0,
			"current_month.sold":      0.0,
			"updated_at":              time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("reset month activity: %w", err)
	}
	return nil
}

// ListSales returns all sale records, newest first.
func (r *MongoRepository) ListSales(ctx context.Context) ([]models.SaleRecord, error) {
	out := []models.SaleRecord{}
	if err := r.findAll(ctx, collSales, &out); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return out, nil
}

// InsertSale stores a sale record.
func (r *MongoRepository) InsertSale(ctx context.Context, sale models.SaleRecord) (models.SaleRecord, error) {
	sale.CreatedAt = time.Now().UTC()
	res, err := r.coll(collSales).InsertOne(ctx, sale)
	if err != nil {
		return models.SaleRecord{}, fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = res.InsertedID.(primitive.ObjectID)
	return sale, nil
}

// ListDayEntries returns mama day entries with dates inside [startDate,
// endDate]. Dates are stored as YYYY-MM-DD strings, so a lexicographic
// range match is a date range match. Empty bounds are open ends.
func (r *MongoRepository) ListDayEntries(ctx context.Context, startDate, endDate string) ([]models.MamaDayEntry, error) {
	dateFilter := bson.M{}
	if startDate != "" {
		dateFilter["$gte"] = startDate
	}
	if endDate != "" {
		dateFilter["$lte"] = endDate
	}
	filter := bson.M{}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	cursor, err := r.coll(collDayEntries).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list day entries: %w", err)
	}
	out := []models.MamaDayEntry{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode day entries: %w", err)
	}
	return out, nil
}

// InsertDayEntry stores a mama day entry.
func (r *MongoRepository) InsertDayEntry(ctx context.Context, entry models.MamaDayEntry) (models.MamaDayEntry, error) {
	entry.CreatedAt = time.Now().UTC()
	res, err := r.coll(collDayEntries).InsertOne(ctx, entry)
	if err != nil {
		return models.MamaDayEntry{}, fmt.Errorf("insert day entry: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return entry, nil
}

// ListAccounts returns all bank accounts.
func (r *MongoRepository) ListAccounts(ctx context.Context) ([]models.BankAccount, error) {
	cursor, err := r.coll(collAccounts).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	out := []models.BankAccount{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return out, nil
}

// InsertAccount stores a bank account.
func (r *MongoRepository) InsertAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error) {
	account.UpdatedAt = time.Now().UTC()
	res, err := r.coll(collAccounts).InsertOne(ctx, account)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("insert account: %w", err)
	}
	account.ID = res.InsertedID.(primitive.ObjectID)
	return account, nil
}

func (r *MongoRepository) findAll(ctx context.Context, collection string, out any) error {
	cursor, err := r.coll(collection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
