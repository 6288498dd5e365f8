package repository

import (
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTxSession accumulates TransactWriteItems until the coordinator
// commits them. Stage methods only append here; no I/O happens before
// commit, so a failed stage leaves nothing to roll back.
type DynamoTxSession struct {
	items []types.TransactWriteItem
}

var _ interfaces.TxSession = (*DynamoTxSession)(nil)

func (s *DynamoTxSession) TxSession() {}

func (s *DynamoTxSession) add(item types.TransactWriteItem) {
	s.items = append(s.items, item)
}

// sessionOf unwraps the session handle staged writes attach to. Sessions from
// any other coordinator implementation are a wiring bug.
func sessionOf(sess interfaces.TxSession) (*DynamoTxSession, error) {
	s, ok := sess.(*DynamoTxSession)
	if !ok || s == nil {
		return nil, interfaces.ErrInvalidSession
	}
	return s, nil
}
