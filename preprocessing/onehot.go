package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/arules/core/model"
	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var _ model.TableTransformer = (*OneHotEncoder)(nil)

// OneHotEncoder はカテゴリカルテーブルをアイテムのトランザクションに変換する
// 各属性の各値が一つのアイテム（"attribute=value"）になる
type OneHotEncoder struct {
	state *model.FitState

	vocab *itemset.Vocabulary
	// attrOf は各アイテムIDの属性インデックス
	attrOf []int
}

// NewOneHotEncoder は新しいOneHotEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewOneHotEncoder()
//	tx, err := enc.FitTransform(table)
//	labels := enc.Vocabulary().Labels(itemset.New(0, 3))
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{state: model.NewFitState()}
}

// Fit はテーブルに現れる全ての (属性, 値) の組にアイテムIDを割り当てる
// IDは属性の順、属性内では値の辞書順に割り当てられる
//
// パラメータ:
//   - t: 観測 × 属性 のカテゴリカルテーブル
//
// 戻り値:
//   - error: 観測数または属性数が0の場合 EmptyInputError
func (e *OneHotEncoder) Fit(t *dataset.Table) error {
	if t == nil || t.NumRows() == 0 || t.NumColumns() == 0 {
		rows, cols := 0, 0
		if t != nil {
			rows, cols = t.NumRows(), t.NumColumns()
		}
		return errors.NewEmptyInputError("OneHotEncoder.Fit", rows, cols)
	}

	vocab := itemset.NewVocabulary(t.NumColumns() * 4)
	var attrOf []int
	for j, attr := range t.Columns {
		for _, v := range t.Distinct(j) {
			vocab.Add(itemset.Item{Attribute: attr, Value: v})
			attrOf = append(attrOf, j)
		}
	}
	vocab.Freeze()

	e.vocab = vocab
	e.attrOf = attrOf
	e.state.MarkFitted(t.Columns, t.NumRows())
	return nil
}

// Transform はテーブルの各観測を、真となるアイテムの集合に変換する
// 各属性からちょうど一つのアイテムが選ばれる
//
// 戻り値:
//   - *itemset.Transactions: 縦型（アイテムごとのtid-list）のトランザクション
//   - error: 未学習、属性の不一致、未知の値の場合
func (e *OneHotEncoder) Transform(t *dataset.Table) (*itemset.Transactions, error) {
	if err := e.state.Require("OneHotEncoder", "Transform"); err != nil {
		return nil, err
	}
	attributes := e.state.Attributes()
	if t == nil || t.NumRows() == 0 {
		return nil, errors.NewEmptyInputError("OneHotEncoder.Transform", 0, len(attributes))
	}
	if err := e.state.CheckSchema("OneHotEncoder.Transform", t.Columns); err != nil {
		return nil, err
	}

	b := itemset.NewBuilder(e.vocab.Len(), t.NumRows(), func(id itemset.ItemID) int {
		return e.attrOf[id]
	})
	ids := make([]itemset.ItemID, len(attributes))
	for i, row := range t.Rows {
		for j, v := range row {
			id, ok := e.vocab.Lookup(itemset.Item{Attribute: attributes[j], Value: v})
			if !ok {
				return nil, errors.NewValueError("OneHotEncoder.Transform",
					fmt.Sprintf("row %d: unseen value %q for attribute %q", i, v, attributes[j]))
			}
			ids[j] = id
		}
		if err := b.Add(ids...); err != nil {
			return nil, errors.NewInvariantViolation("OneHotEncoder.Transform: %v", err)
		}
	}
	return b.Build(), nil
}

// FitTransform はFitとTransformを同時に実行する
func (e *OneHotEncoder) FitTransform(t *dataset.Table) (*itemset.Transactions, error) {
	if err := e.Fit(t); err != nil {
		return nil, err
	}
	return e.Transform(t)
}

// Vocabulary は学習済みのアイテム語彙を返す（未学習ならnil）
func (e *OneHotEncoder) Vocabulary() *itemset.Vocabulary {
	return e.vocab
}

// Attributes は学習時の属性名を返す
func (e *OneHotEncoder) Attributes() []string {
	return e.state.Attributes()
}

// IsFitted は学習済みかどうかを返す
func (e *OneHotEncoder) IsFitted() bool {
	return e.state.IsFitted()
}

// Matrix はトランザクションを N × アイテム数 の0/1行列として返す
// 列 j はアイテムID j に対応する
func Matrix(tx *itemset.Transactions) *mat.Dense {
	n, items := tx.Len(), tx.NumItems()
	if n == 0 || items == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, items, nil)
	for id := 0; id < items; id++ {
		tids := tx.TIDs(itemset.ItemID(id))
		for i, ok := tids.NextSet(0); ok; i, ok = tids.NextSet(i + 1) {
			m.Set(int(i), id, 1)
		}
	}
	return m
}
