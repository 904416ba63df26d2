package metrics

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Contingency は x と y のクロス集計表を返す
// 行は x の値（辞書順）、列は y の値（辞書順）
func Contingency(x, y []string) (*mat.Dense, []string, []string, error) {
	if len(x) != len(y) {
		return nil, nil, nil, errors.NewDimensionError("metrics.Contingency", len(x), len(y), 0)
	}
	if len(x) == 0 {
		return nil, nil, nil, errors.NewEmptyInputError("metrics.Contingency", 0, 2)
	}
	rows, rowIdx := levels(x)
	cols, colIdx := levels(y)
	m := mat.NewDense(len(rows), len(cols), nil)
	for i := range x {
		r, c := rowIdx[x[i]], colIdx[y[i]]
		m.Set(r, c, m.At(r, c)+1)
	}
	return m, rows, cols, nil
}

// CramersV はバイアス補正付きのクラメールの連関係数を計算する
// 0 は無関連、1 は完全な関連を表す
//
// 自由度1（2×2表）の場合はイェーツの連続性補正を適用したカイ二乗値を用いる
func CramersV(x, y []string) (float64, error) {
	table, _, _, err := Contingency(x, y)
	if err != nil {
		return 0, err
	}
	r, k := table.Dims()
	n := mat.Sum(table)
	if n <= 1 {
		return 0, nil
	}

	chi2 := chiSquare(table)
	phi2 := chi2 / n
	rf, kf := float64(r), float64(k)

	phi2corr := math.Max(0, phi2-((kf-1)*(rf-1))/(n-1))
	rcorr := rf - ((rf-1)*(rf-1))/(n-1)
	kcorr := kf - ((kf-1)*(kf-1))/(n-1)
	denom := math.Min(kcorr-1, rcorr-1)
	if denom <= 0 {
		return 0, nil
	}
	return math.Sqrt(phi2corr / denom), nil
}

// chiSquare はクロス集計表のピアソンのカイ二乗統計量を返す
func chiSquare(table *mat.Dense) float64 {
	r, k := table.Dims()
	if r < 2 || k < 2 {
		return 0
	}
	rowSums := make([]float64, r)
	colSums := make([]float64, k)
	for i := 0; i < r; i++ {
		rowSums[i] = mat.Sum(table.RowView(i))
	}
	for j := 0; j < k; j++ {
		colSums[j] = mat.Sum(table.ColView(j))
	}
	n := mat.Sum(table)

	yates := (r-1)*(k-1) == 1
	obs := make([]float64, 0, r*k)
	exp := make([]float64, 0, r*k)
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			o := table.At(i, j)
			e := rowSums[i] * colSums[j] / n
			if yates {
				d := o - e
				o -= math.Copysign(math.Min(0.5, math.Abs(d)), d)
			}
			obs = append(obs, o)
			exp = append(exp, e)
		}
	}
	return stat.ChiSquare(obs, exp)
}

// AssociationMatrix はテーブルの全カラム対についてクラメールのVを計算する
// 対角成分は1
func AssociationMatrix(t *dataset.Table) (*mat.SymDense, error) {
	n := t.NumColumns()
	if n == 0 || t.NumRows() == 0 {
		return nil, errors.NewEmptyInputError("metrics.AssociationMatrix", t.NumRows(), n)
	}
	columns := make([][]string, n)
	for j, c := range t.Columns {
		col, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			v, err := CramersV(columns[i], columns[j])
			if err != nil {
				return nil, errors.Wrapf(err, "cramers v %s/%s", t.Columns[i], t.Columns[j])
			}
			m.SetSym(i, j, v)
		}
	}
	return m, nil
}

func levels(values []string) ([]string, map[string]int) {
	idx := make(map[string]int)
	for _, v := range values {
		idx[v] = 0
	}
	names := make([]string, 0, len(idx))
	for v := range idx {
		names = append(names, v)
	}
	sort.Strings(names)
	for i, v := range names {
		idx[v] = i
	}
	return names, idx
}
