package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontManager 字体管理器
// 同一字体数据只解析一次，按字号缓存 GoTextFace
type FontManager struct {
	source    *text.GoTextFaceSource
	faceCache map[float64]*text.GoTextFace
}

// NewFontManager 从 TTF/OTF 数据创建字体管理器
func NewFontManager(fontData []byte) (*FontManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FontManager{
		source:    source,
		faceCache: make(map[float64]*text.GoTextFace),
	}, nil
}

// NewDefaultFontManager 使用内置的 Go Regular 字体
func NewDefaultFontManager() (*FontManager, error) {
	return NewFontManager(goregular.TTF)
}

// Face 返回指定字号的字体
func (fm *FontManager) Face(size float64) *text.GoTextFace {
	if face, ok := fm.faceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    fm.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.faceCache[size] = face
	return face
}
