// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 設定エラー・空入力エラーなどの致命的エラーと、「頻出アイテムセットなし」
// 「ルールなし」のような正常だが報告すべき結果（警告）を区別します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("arules-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// NoRulesWarning などの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nil を渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	マイニング結果の警告型（エラーではない）
//
// ===========================================================================

// NoFrequentItemsetsWarning は min_support がデータに対して厳しすぎて
// 頻出アイテムセットが一つも見つからなかった場合の警告です。
type NoFrequentItemsetsWarning struct {
	MinSupport float64
	Samples    int
}

func (w *NoFrequentItemsetsWarning) Error() string {
	return fmt.Sprintf("no frequent itemsets found with min_support=%g over %d samples. Try lowering min_support.", w.MinSupport, w.Samples)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *NoFrequentItemsetsWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("min_support", w.MinSupport).
		Int("samples", w.Samples).
		Str("type", "NoFrequentItemsetsWarning")
}

// NewNoFrequentItemsetsWarning は新しいNoFrequentItemsetsWarningを作成します。
func NewNoFrequentItemsetsWarning(minSupport float64, samples int) *NoFrequentItemsetsWarning {
	return &NoFrequentItemsetsWarning{MinSupport: minSupport, Samples: samples}
}

// NoRulesWarning は頻出アイテムセットは存在するが、min_confidence を満たす
// ルールが一つも無かった場合の警告です。
type NoRulesWarning struct {
	MinConfidence float64
	Itemsets      int
}

func (w *NoRulesWarning) Error() string {
	return fmt.Sprintf("no rules found meeting min_confidence=%g from %d frequent itemsets", w.MinConfidence, w.Itemsets)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *NoRulesWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("min_confidence", w.MinConfidence).
		Int("itemsets", w.Itemsets).
		Str("type", "NoRulesWarning")
}

// NewNoRulesWarning は新しいNoRulesWarningを作成します。
func NewNoRulesWarning(minConfidence float64, itemsets int) *NoRulesWarning {
	return &NoRulesWarning{MinConfidence: minConfidence, Itemsets: itemsets}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ConfigurationError はマイニングパラメータの検証に失敗した場合のエラーです。
// 計算は一切行われずに即座に返されます。
type ConfigurationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("arules: invalid configuration for '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ConfigurationError")
}

// NewConfigurationError は新しいConfigurationErrorを作成し、スタックトレースを付与します。
func NewConfigurationError(param, reason string, value interface{}) error {
	err := &ConfigurationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// EmptyInputError はエンコード後の観測数または属性数が0の場合のエラーです。
// サポートの分母が計算できないため、マイニングにとって致命的です。
type EmptyInputError struct {
	Op         string
	Rows       int
	Attributes int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("arules: %s: empty input (%d rows, %d attributes)", e.Op, e.Rows, e.Attributes)
}

// Is は errors.Is(err, ErrEmptyData) を満たすためのメソッドです。
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyData
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EmptyInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("attributes", e.Attributes).
		Str("type", "EmptyInputError")
}

// NewEmptyInputError は新しいEmptyInputErrorを作成し、スタックトレースを付与します。
func NewEmptyInputError(op string, rows, attributes int) error {
	err := &EmptyInputError{Op: op, Rows: rows, Attributes: attributes}
	return errors.WithStack(err)
}

// NotFittedError はエンコーダが未学習の状態で `Transform` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("arules: %s: this encoder is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力テーブルの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for attributes
}

func (e *DimensionError) Error() string {
	axisName := "attributes"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("arules: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切な場合に発生するエラーです。
// 例えば、未知のカラム名を指定した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("arules: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// StageError はパイプラインの各ステージで発生したエラーをラップします。
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("arules: stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError は新しいStageErrorを作成し、スタックトレースを付与します。
func NewStageError(stage string, err error) error {
	return errors.WithStack(&StageError{Stage: stage, Err: err})
}

// ===========================================================================
//
//	内部不変条件違反
//
// ===========================================================================

// NewInvariantViolation はマイナーの枝刈りロジックのバグを示す内部エラーを作成します。
// ユーザー向けエラーではなく、アンチモノトニック性が守られていれば発生しません。
func NewInvariantViolation(format string, args ...interface{}) error {
	return errors.AssertionFailedf(format, args...)
}

// IsInvariantViolation はエラーが内部不変条件違反かどうかを判定します。
func IsInvariantViolation(err error) bool {
	return errors.HasAssertionFailure(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrUnknownColumn はテーブルに存在しないカラムを参照した場合のエラーです。
	ErrUnknownColumn = New("unknown column")
)
