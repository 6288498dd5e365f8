package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoTransactionAPI is the slice of the DynamoDB client the coordinator
// needs. Narrowed for tests.
type DynamoTransactionAPI interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// DynamoTransactionCoordinator commits a session's staged writes with a
// single TransactWriteItems call: DynamoDB applies all of them or none.
// An error from fn discards the session before any I/O happens.
type DynamoTransactionCoordinator struct {
	api DynamoTransactionAPI
}

var _ interfaces.ITransactionCoordinator = (*DynamoTransactionCoordinator)(nil)

func NewDynamoTransactionCoordinator(api DynamoTransactionAPI) *DynamoTransactionCoordinator {
	return &DynamoTransactionCoordinator{api: api}
}

func (c *DynamoTransactionCoordinator) Run(ctx context.Context, fn func(sess interfaces.TxSession) error) error {
	sess := &DynamoTxSession{}
	if err := fn(sess); err != nil {
		return err
	}
	if len(sess.items) == 0 {
		return nil
	}

	_, err := c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      sess.items,
		ClientRequestToken: ptrString(uuid.NewString()),
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			log.Printf("[tx][repository] transaction canceled items=%d reasons=%s", len(sess.items), cancellationReasons(canceled))
			return fmt.Errorf("%w: %s", interfaces.ErrTransactionConflict, cancellationReasons(canceled))
		}
		return err
	}
	return nil
}

func cancellationReasons(e *types.TransactionCanceledException) string {
	out := ""
	for i, r := range e.CancellationReasons {
		if r.Code == nil || *r.Code == "None" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("item[%d]=%s", i, *r.Code)
	}
	if out == "" {
		return "unknown"
	}
	return out
}

func ptrString(s string) *string {
	return &s
}
