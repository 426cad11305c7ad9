package encode_utils

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// 支持的字符集
var encodings = map[string]encoding.Encoding{
	EncodingUTF8:     unicode.UTF8,
	EncodingUTF8BOM:  unicode.UTF8BOM,
	EncodingGBK:      simplifiedchinese.GBK,
	EncodingGB18030:  simplifiedchinese.GB18030,
	EncodingHZGB2312: simplifiedchinese.HZGB2312,
}

func lookup(encodingStr string) (encoding.Encoding, error) {
	enc, ok := encodings[encodingStr]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", encodingStr)
	}
	return enc, nil
}

// NewEncoder 创建编码器 不支持的字符集返回 nil
func NewEncoder(encodingStr string) *encoding.Encoder {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewEncoder()
}

// NewDecoder 创建解码器 不支持的字符集返回 nil
func NewDecoder(encodingStr string) *encoding.Decoder {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewDecoder()
}

// NewWriter 包装 w 写入的 UTF-8 文本按 encodingStr 编码后输出
func NewWriter(w io.Writer, encodingStr string) (io.Writer, error) {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Writer(w), nil
}

// EncodeString 把 s 编码成指定字符集
func EncodeString(s string, encodingStr string) ([]byte, error) {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "encode to %s", encodingStr)
	}
	return out, nil
}

// DecodeString 把指定字符集的数据解码成 UTF-8
func DecodeString(data []byte, encodingStr string) (string, error) {
	enc, err := lookup(encodingStr)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, "decode from %s", encodingStr)
	}
	return string(out), nil
}

// Render 按字符集渲染任意 fmt.Stringer 例如容器
func Render(v fmt.Stringer, encodingStr string) ([]byte, error) {
	return EncodeString(v.String(), encodingStr)
}
