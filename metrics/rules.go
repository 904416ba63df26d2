// Package metrics は相関ルールの強度指標とカテゴリ変数間の関連度を計算する
package metrics

// Support は count/n を返す（n が0なら0）
func Support(count, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(count) / float64(n)
}

// Confidence は support(A∪C)/support(A) を件数から計算する
// 件数の比なので N で割る前後で値は変わらない
func Confidence(unionCount, antecedentCount int) float64 {
	if antecedentCount == 0 {
		return 0
	}
	return float64(unionCount) / float64(antecedentCount)
}

// Lift は confidence/support(C) を返す
// 1 なら独立、1 より大きければ正の関連
func Lift(confidence, consequentSupport float64) float64 {
	if consequentSupport == 0 {
		return 0
	}
	return confidence / consequentSupport
}

// Leverage は support(A∪C) − support(A)·support(C) を返す
func Leverage(unionSupport, antecedentSupport, consequentSupport float64) float64 {
	return unionSupport - antecedentSupport*consequentSupport
}
