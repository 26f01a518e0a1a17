// Package logtail reads the end of the docshell log file.
//
// Read keeps a ring buffer of the last maxLines lines, so memory use is
// bounded by the requested count rather than the file size. Each line is
// parsed for the logrus level it was written at; both the text and the JSON
// formatter are recognized. Lines without a level (stack traces, wrapped
// output) are kept and pass every Filter.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//	for _, l := range logtail.Filter(lines, logrus.WarnLevel) {
//		fmt.Println(l.Text)
//	}
//
// A missing log file is not an error: Read returns no lines.
package logtail
