// config.go を直接さわらずにここで差し替え

package main

import "runtime"

func init() {
	LocalOverride = func(cfg *Config) {

		// コメントアウトでデフォルト値が使われる。

		// 並列数（CPU 数に合わせる）
		cfg.Concurrency = runtime.NumCPU()
		// 結果表示を制限。ファイルには全部保存される。
		// cfg.MaxPrint = 10
		// xlsx 出力のファイル名（"" なら保存しない）
		// cfg.XLSXFile = "result.xlsx"
		// tsv 出力のファイル名（"" なら保存しない）
		// cfg.TSVFile = "result.tsv"

		// 電流を mA で表示したいとき
		// for i := range cfg.Columns {
		// 	if cfg.Columns[i].Key == "current" {
		// 		cfg.Columns[i] = ColumnSpec{Key: "current", Label: "I [mA]", Prefix: "m"}
		// 	}
		// }
	}
}
