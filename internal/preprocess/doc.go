// Package preprocess detects preprocessing directives that survived into a
// built distribution tree.
//
// A scan is a single sequential pass:
//
//	walk -> filter -> scan -> report
//
// The Filter keeps files whose extension is on a fixed, case-sensitive
// allow-list and resolves each file's marker style once: stylesheets use
// '%' directives, everything else uses '#'. The Scanner then reads each
// candidate line by line and flags the file when any line begins with a
// marker followed by one of the directive keywords. Only the start of a line
// is tested; a keyword later in the line is never a directive.
//
// Files that cannot be read are logged and skipped. They never appear as
// violations.
package preprocess
