package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting build":                "ビルドを開始します",
		"Building orbs from %s":         "%s からオーブを作成します",
		"Building %s orb":               "%s オーブを作成中",
		"Skipping %s orb: no reference": "%s オーブをスキップします: 参照画像がありません",
		"Output saved to %s":            "出力を %s に保存しました",
		"Build completed successfully":  "ビルドが正常に完了しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Load stage
		"Loaded %s: %dx%d": "%s を読み込みました: %dx%d",

		// Transform stage
		"Applying %s": "%s を適用中",

		// Crop stage
		"Cropping circle at (%d, %d) radius %d":             "円形に切り抜き中: 中心 (%d, %d) 半径 %d",
		"Circle adjusted to fit: center (%d, %d) radius %d": "円を画像内に収まるよう調整しました: 中心 (%d, %d) 半径 %d",

		// Ring stage
		"Drawing ring: width %d, color #%02x%02x%02x": "リングを描画中: 幅 %d, 色 #%02x%02x%02x",
		"No committed crop, using centered square":    "確定済みの切り抜きがないため中央の正方形を使用します",

		// Broken stage
		"Transplanting alpha: reference %dx%d onto %dx%d": "アルファを移植中: 参照 %dx%d → %dx%d",
		"Applied %d eraser strokes of size %d":            "サイズ %[2]d の消しゴムを %[1]d 回適用しました",

		// Export stage
		"Exporting %dx%d PNG":        "%dx%d のPNGを書き出し中",
		"Backup written to %s":       "バックアップを %s に書き込みました",
		"Failed to write backup: %s": "バックアップの書き込みに失敗しました: %s",

		// Paint
		"Stroke at (%d, %d) is outside the image": "(%d, %d) のストロークは画像の外です",
		"Failed to save debug recipe: %s":         "デバッグ用レシピの保存に失敗しました: %s",

		// Sheet
		"Sheet with %d orbs saved to %s": "%d 個のオーブを並べたシートを %s に保存しました",

		// Presets
		"Preset %s saved":      "プリセット %s を保存しました",
		"Preset %s deleted":    "プリセット %s を削除しました",
		"Using ring preset %s": "リングプリセット %s を使用します",

		// Summary
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Debug sink
		"Failed to save debug image: %s": "デバッグ画像の保存に失敗しました: %s",

		// Errors
		"Failed to load image: %s":       "画像の読み込みに失敗しました: %s",
		"Failed to apply transforms: %s": "変形の適用に失敗しました: %s",
		"Failed to crop: %s":             "切り抜きに失敗しました: %s",
		"Failed to draw ring: %s":        "リングの描画に失敗しました: %s",
		"Failed to transplant alpha: %s": "アルファの移植に失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
	})
}
