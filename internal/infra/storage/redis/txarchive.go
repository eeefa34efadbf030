package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletcore/internal/txarchive"

	"github.com/redis/go-redis/v9"
)

// txsKey is the hash holding one JSON record per transaction id:
//
//	"<prefix>:txarchive:txs"
func (c *client) txsKey() string {
	return fmt.Sprintf("%s:txarchive:txs", c.prefix)
}

// timelineKey is the sorted set of transaction ids scored by transaction
// timestamp:
//
//	"<prefix>:txarchive:timeline"
func (c *client) timelineKey() string {
	return fmt.Sprintf("%s:txarchive:timeline", c.prefix)
}

// lastSyncKey holds the last successful sync as Unix nanoseconds:
//
//	"<prefix>:txarchive:last_sync"
func (c *client) lastSyncKey() string {
	return fmt.Sprintf("%s:txarchive:last_sync", c.prefix)
}

// SaveTx replaces the record stored for rec.Tx.ID and moves it on the
// timeline, in a single transaction. A record that cannot be encoded is
// reported as a permanent failure.
func (c *client) SaveTx(ctx context.Context, rec txarchive.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return retry.Permanent(err)
	}

	id := rec.Tx.ID.String()

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, c.txsKey(), id, data)
		pipe.ZAdd(ctx, c.timelineKey(), redis.Z{
			Score:  float64(rec.Tx.Timestamp.Unix()),
			Member: id,
		})
		return nil
	})
	return err
}

// ListTxs returns up to limit records, newest transaction first. A limit of
// zero or less returns everything.
func (c *client) ListTxs(ctx context.Context, limit int) ([]txarchive.Record, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := c.conn.ZRevRange(ctx, c.timelineKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	values, err := c.conn.HMGet(ctx, c.txsKey(), ids...).Result()
	if err != nil {
		return nil, err
	}

	return decodeRecords(values)
}

// decodeRecords skips ids whose record is missing from the hash.
func decodeRecords(values []any) ([]txarchive.Record, error) {
	recs := make([]txarchive.Record, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var rec txarchive.Record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

func (c *client) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return c.conn.Set(ctx, c.lastSyncKey(), t.UnixNano(), 0).Err()
}

// LastSyncTime returns txarchive.ErrNoSyncRecorded if nothing was saved yet.
func (c *client) LastSyncTime(ctx context.Context) (time.Time, error) {
	val, err := c.conn.Get(ctx, c.lastSyncKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txarchive.ErrNoSyncRecorded
		}

		return time.Time{}, err
	}

	return parseUnixNano(val)
}

func parseUnixNano(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last sync value %q: %w", s, err)
	}
	return time.Unix(0, n).UTC(), nil
}

// Compile-time assertion to ensure client implements the txarchive Store.
var _ txarchive.Store = new(client)
