package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor 将一次请求内的多次读写绑定到同一个事务上，
// fn 内通过 ctx 调用的仓储方法都会复用该事务
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactorImpl struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &TransactorImpl{db: db}
}

// Transaction 读写事务，已处于事务中时直接复用
func (s *TransactorImpl) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// ReadSnapshot 只读快照，聚合查询期间看到一致的数据
func (s *TransactorImpl) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	}, s.snapshotOptions())
}

func (s *TransactorImpl) snapshotOptions() *sql.TxOptions {
	switch s.db.Dialector.Name() {
	case "mysql", "postgres":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	default:
		// sqlite 只支持默认隔离级别
		return nil
	}
}

// conn 优先使用 ctx 中的事务
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
