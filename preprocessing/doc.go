// Package preprocessing は観測テーブルをマイニング用のアイテム表現に変換する
//
// OneHotEncoder は各属性値を一つのブールアイテム "attribute=value" として扱う。
package preprocessing
