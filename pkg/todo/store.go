package todo

import (
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"src.weft.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[todo/store] ")

// ErrNoItem is returned when operating on an item ID that is not in the
// store.
var ErrNoItem = errors.New("no such item")

const bucketItem = "item"

var initDB = map[string]func(tx *bolt.Tx) error{
	"initialize item table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketItem))
		return err
	},
}

// Store persists items in a bolt database. Keys are ULIDs, so iterating the
// item bucket yields items in creation order.
type Store struct {
	db *bolt.DB
}

// OpenStore opens the database file, creating it and its tables as needed.
func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened store at", path)
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a new item with the given text and a fresh ID.
func (s *Store) Add(text string) (Item, error) {
	item := Item{ID: ulid.Make().String(), Text: text}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return putItem(tx.Bucket([]byte(bucketItem)), item)
	})
	return item, err
}

// Toggle flips the done status of the item with the given ID.
func (s *Store) Toggle(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketItem))
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNoItem
		}
		var item Item
		if err := yaml.Unmarshal(v, &item); err != nil {
			return err
		}
		item.Done = !item.Done
		return putItem(b, item)
	})
}

// Del deletes the item with the given ID.
func (s *Store) Del(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketItem))
		if b.Get([]byte(id)) == nil {
			return ErrNoItem
		}
		return b.Delete([]byte(id))
	})
}

// Items returns all items in creation order.
func (s *Store) Items() ([]Item, error) {
	var items []Item
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketItem))
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var item Item
			if err := yaml.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("item %s: %w", k, err)
			}
			items = append(items, item)
		}
		return nil
	})
	return items, err
}

func putItem(b *bolt.Bucket, item Item) error {
	data, err := yaml.Marshal(item)
	if err != nil {
		return err
	}
	return b.Put([]byte(item.ID), data)
}
