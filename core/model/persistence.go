package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/YuminosukeSato/arules/pkg/errors"
)

// KindRules tags a saved slice of ranked rule records.
const KindRules = "rules"

const (
	fileMagic     = "arules"
	formatVersion = 1
)

// header は全てのgobペイロードの先頭に書き込まれる
type header struct {
	Magic   string
	Version int
	Kind    string
}

// Save は値をkindタグ付きのgob形式でファイルに保存する
//
// パラメータ:
//   - path: 保存先のファイルパス
//   - kind: ペイロードの種類（KindRules など）
//   - v: 保存する値
//
// 使用例:
//
//	err := model.Save("rules.gob", model.KindRules, result.Records)
func Save(path, kind string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Encode(file, kind, v); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Load はSaveで書かれたファイルを読み込む
// kindが一致しない場合は ValueError を返す
//
// 使用例:
//
//	var records []pipeline.Record
//	err := model.Load("rules.gob", model.KindRules, &records)
func Load(path, kind string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return Decode(file, kind, v)
}

// Encode はヘッダとペイロードをwに書き込む
func Encode(w io.Writer, kind string, v any) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(header{Magic: fileMagic, Version: formatVersion, Kind: kind}); err != nil {
		return errors.Wrap(err, "encode header")
	}
	if err := enc.Encode(v); err != nil {
		return errors.Wrapf(err, "encode %s", kind)
	}
	return nil
}

// Decode はヘッダを検証してからペイロードをvに読み込む
func Decode(r io.Reader, kind string, v any) error {
	dec := gob.NewDecoder(r)
	var h header
	if err := dec.Decode(&h); err != nil {
		return errors.Wrap(err, "decode header")
	}
	if h.Magic != fileMagic {
		return errors.NewValueError("model.Decode", "not an arules file")
	}
	if h.Version != formatVersion {
		return errors.NewValueError("model.Decode", fmt.Sprintf("unsupported format version %d", h.Version))
	}
	if h.Kind != kind {
		return errors.NewValueError("model.Decode", fmt.Sprintf("file holds %q, want %q", h.Kind, kind))
	}
	if err := dec.Decode(v); err != nil {
		return errors.Wrapf(err, "decode %s", kind)
	}
	return nil
}
