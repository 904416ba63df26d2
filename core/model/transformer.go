package model

import (
	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/itemset"
)

// TableTransformer はカテゴリカルテーブルをトランザクションに変換するインターフェース
type TableTransformer interface {
	// Fit はアイテム語彙を学習する
	Fit(t *dataset.Table) error

	// Transform はテーブルをトランザクションに変換する
	Transform(t *dataset.Table) (*itemset.Transactions, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(t *dataset.Table) (*itemset.Transactions, error)

	// Vocabulary は学習済みのアイテム語彙を返す
	Vocabulary() *itemset.Vocabulary
}
