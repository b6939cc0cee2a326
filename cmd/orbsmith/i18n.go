// Package main provides localization for the orbsmith CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":   "入力",
		"Output":  "出力先",
		"Crop":    "切り抜き",
		"Ring":    "リング",
		"Damage":  "ダメージ",
		"Mask":    "マスク",
		"Paint":   "ペイント",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Root command
		"Build health orb sprites from arbitrary images":                          "任意の画像から体力オーブのスプライトを作成",
		"orbsmith crops, rings and damages images into 64x64 health orb sprites.": "orbsmithは画像を円形に切り抜き、リングを付け、破損させて64x64の体力オーブを作成します。",

		// Build command
		"Build the full, medium and low health orbs":                                                              "満タン・中・低の体力オーブを作成",
		"Crop the source image to a circle, draw the ring and derive the damaged variants from reference images.": "元画像を円形に切り抜いてリングを描き、参照画像から破損オーブを作成します。",
		"YAML build recipe":                                                                                       "YAMLのビルドレシピ",
		"Also write the full orb at its native size":                                                              "満タンのオーブを元のサイズでも書き出す",
		"Reference image for the medium-health orb":                                                               "中体力オーブの参照画像",
		"Reference image for the low-health orb":                                                                  "低体力オーブの参照画像",
		"Write a markdown build summary to this path":                                                             "Markdownのビルドサマリーを書き出すパス",
		"Write a contact sheet of the built orbs to this path":                                                    "作成したオーブの一覧シートを書き出すパス",

		// Crop command
		"Crop an image to a circle":                                                                 "画像を円形に切り抜く",
		"Crop circle as x,y,radius in image pixels (default: centered)":                             "切り抜く円（x,y,半径、画像ピクセル単位。デフォルト: 中央）",
		"Transform applied before cropping (flip-h, flip-v, rotate-left, rotate-right); repeatable": "切り抜き前に適用する変形（flip-h, flip-v, rotate-left, rotate-right）。複数指定可",

		// Ring command
		"Draw a colored ring around an image":                                                    "画像の周囲に色付きのリングを描く",
		"Crop the image when --circle or --transform is given, then composite the ring over it.": "--circle または --transform が指定されていれば切り抜いてから、リングを合成します。",
		"Ring color (hex, e.g., #000000)":                                                        "リングの色（16進数、例: #000000）",
		"Ring width in pixels (1-100)":                                                           "リングの幅（ピクセル、1-100）",
		"Ring preset name, overrides color and width":                                            "リングプリセット名（色と幅を上書き）",
		"Preset store (.yaml, or .db/.sqlite for SQLite)":                                        "プリセットの保存先（.yaml、またはSQLiteの .db/.sqlite）",
		"Store the resulting ring style under this name":                                         "結果のリングスタイルをこの名前で保存",

		// Broken command
		"Derive a damaged orb from a reference image":                                      "参照画像から破損オーブを作成",
		"Copy the alpha channel of the reference onto the orb, then apply eraser strokes.": "参照画像のアルファチャンネルをオーブに移植し、消しゴムを適用します。",
		"Image whose alpha channel is copied onto the orb":                                 "アルファチャンネルをオーブに移植する画像",
		"Eraser stroke at x,y in orb pixels; repeatable":                                   "x,y への消しゴム（オーブのピクセル単位）。複数指定可",
		"Eraser diameter in pixels (5-50)":                                                 "消しゴムの直径（ピクセル、5-50）",

		// Paint command
		"Touch up an image with brush strokes":                           "ブラシで画像を修正",
		"Draw opaque black or erase to transparency at each --at point.": "--at の各位置に不透明な黒を描くか、透明に消します。",
		"Brush: draw or erase":                                           "ブラシ: draw または erase",
		"Brush radius in pixels (1-30)":                                  "ブラシの半径（ピクセル、1-30）",
		"Stroke at x,y in image pixels; repeatable":                      "x,y へのストローク（画像のピクセル単位）。複数指定可",

		// Mask command
		"Paint a broken-orb mask":                                                              "破損オーブ用のマスクを描く",
		"Paint solid or spray strokes into a 512x512 mask and export it as a transparent PNG.": "512x512のマスクに塗りつぶしまたはスプレーで描き、透過PNGとして書き出します。",
		"Also write the mask drawn over the reference image":                                   "参照画像にマスクを重ねた画像も書き出す",
		"Background image for the preview":                                                     "プレビューの背景画像",
		"Solid stroke at x,y; repeatable":                                                      "x,y への塗りつぶし。複数指定可",
		"Spray stroke at x,y; repeatable":                                                      "x,y へのスプレー。複数指定可",
		"Brush radius in pixels (1-100)":                                                       "ブラシの半径（ピクセル、1-100）",
		"Invert the mask after painting":                                                       "描画後にマスクを反転",
		"Seed for spray strokes (0 = random)":                                                  "スプレーの乱数シード（0 = ランダム）",

		// Presets command
		"Manage ring presets":      "リングプリセットを管理",
		"List stored ring presets": "保存済みのリングプリセットを一覧表示",
		"Save a ring preset":       "リングプリセットを保存",
		"Delete a ring preset":     "リングプリセットを削除",
		"preset name is required":  "プリセット名が必要です",

		// Sheet command
		"Lay out orb images side by side":            "オーブ画像を横に並べる",
		"Output image path (.png, or .jpg for JPEG)": "出力画像のパス（.png、JPEGの場合は .jpg）",
		"Caption for each orb in order; repeatable":  "各オーブのキャプション（順番に指定）。複数指定可",
		"Do not draw captions":                       "キャプションを描かない",
		"Size of each orb cell in pixels":            "各オーブのセルサイズ（ピクセル）",
		"Gap between cells in pixels":                "セル間の隙間（ピクセル）",
		"at least one orb image is required":         "オーブ画像を1つ以上指定してください",

		// Version command
		"Show version information": "バージョン情報を表示",
		"orbsmith version %s":      "orbsmith バージョン %s",

		// Output flags
		"Output PNG file path":                              "出力PNGファイルパス",
		"Keep the native size instead of resizing to 64x64": "64x64に縮小せず元のサイズのまま書き出す",
		"Do not write a .backup copy next to each output":   "出力ごとの .backup コピーを書き出さない",
		"an input image is required":                        "入力画像を指定してください",

		// Global flags
		"Log level (debug, info, warn, error)":          "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                       "すべてのログ出力を抑制",
		"Save intermediate images and the build recipe": "中間画像とビルドレシピを保存",
		"Directory for debug output":                    "デバッグ出力先ディレクトリ",
	})
}
