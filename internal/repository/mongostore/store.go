// Package mongostore reads the three record sets from the MongoDB collections
// the loan data loaders populate.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	LoansCollection   = "loans"
	SettledCollection = "settled_loans"
	StockCollection   = "current_loans"

	fieldCCBNumber      = "ccb_number"
	fieldContractStatus = "contract_status"
	fieldSettledDoc     = "DOCUMENTO"
	fieldMovementDate   = "DATA_MOVIMENTO"
	fieldStockDoc       = "NU_DOCUMENTO"
)

// Store implements the ledger, stock and settled stores on MongoDB. The ledger
// lives in its own database; the settled and stock feeds share the funds one.
type Store struct {
	loans   *mongo.Collection
	settled *mongo.Collection
	stock   *mongo.Collection
}

func New(client *mongo.Client, ledgerDB, fundsDB string) *Store {
	funds := client.Database(fundsDB)
	return &Store{
		loans:   client.Database(ledgerDB).Collection(LoansCollection),
		settled: funds.Collection(SettledCollection),
		stock:   funds.Collection(StockCollection),
	}
}

// EnsureIndexes creates the single-field indexes the lookups and the scan use.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll   *mongo.Collection
		fields []string
	}{
		{s.loans, []string{fieldCCBNumber, fieldContractStatus}},
		{s.settled, []string{fieldSettledDoc, fieldMovementDate}},
		{s.stock, []string{fieldStockDoc}},
	}
	for _, ix := range indexes {
		models := make([]mongo.IndexModel, 0, len(ix.fields))
		for _, f := range ix.fields {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: f, Value: 1}}})
		}
		if _, err := ix.coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%w: create indexes on %s: %w", domain.ErrStoreUnavailable, ix.coll.Name(), err)
		}
	}
	return nil
}

type ledgerDoc struct {
	CCBNumber      bson.RawValue `bson:"ccb_number"`
	ContractStatus bson.RawValue `bson:"contract_status"`
}

func (s *Store) FindLedger(ctx context.Context, document string) (*domain.LedgerRecord, error) {
	opts := options.FindOne().SetProjection(bson.M{fieldCCBNumber: 1, fieldContractStatus: 1})

	var doc ledgerDoc
	err := s.loans.FindOne(ctx, documentFilter(fieldCCBNumber, document), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find loan %q: %w", domain.ErrStoreUnavailable, document, err)
	}
	return &domain.LedgerRecord{
		Document: documentKey(doc.CCBNumber),
		Status:   documentKey(doc.ContractStatus),
	}, nil
}

func (s *Store) CountLedger(ctx context.Context) (int64, error) {
	return count(ctx, s.loans)
}

func (s *Store) FindStock(ctx context.Context, document string) (*domain.StockRecord, error) {
	opts := options.FindOne().SetProjection(bson.M{fieldStockDoc: 1})

	var raw bson.Raw
	err := s.stock.FindOne(ctx, documentFilter(fieldStockDoc, document), opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find stock loan %q: %w", domain.ErrStoreUnavailable, document, err)
	}
	return &domain.StockRecord{Document: documentKey(raw.Lookup(fieldStockDoc))}, nil
}

func (s *Store) CountStock(ctx context.Context) (int64, error) {
	return count(ctx, s.stock)
}

// OpenSettled starts a scan over settled_loans in natural order. The server
// cursor does not time out while the run works through a batch.
func (s *Store) OpenSettled(ctx context.Context, pageSize int) (reconciliation.SettledCursor, error) {
	if pageSize <= 0 {
		pageSize = 500
	}
	opts := options.Find().
		SetNoCursorTimeout(true).
		SetBatchSize(int32(pageSize)).
		SetProjection(bson.M{fieldSettledDoc: 1, fieldMovementDate: 1})

	cur, err := s.settled.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open settled feed: %w", domain.ErrStoreUnavailable, err)
	}
	return &settledCursor{cur: cur}, nil
}

func (s *Store) CountSettled(ctx context.Context) (int64, error) {
	return count(ctx, s.settled)
}

func count(ctx context.Context, coll *mongo.Collection) (int64, error) {
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: count %s: %w", domain.ErrStoreUnavailable, coll.Name(), err)
	}
	return n, nil
}
