// Package boxname encodes and decodes the names given to code text boxes.
//
// A box name carries the programming language, whether the box holds the
// program entry point, what the box contains and a numeric id:
//
//	<language>[ main]_<content>_<id>
//
//	"c++ main_code_3"  -> C++, entry point, Code, 3
//	"python_input_7"   -> Python, Input, 7
//	"foo_code_1"       -> Invalid language, Code, 1 (not an error)
//
// Recognised language tokens are "c++", "java" and "python"; anything else
// decodes to Invalid. The " main" marker only applies to C++ and Java. The
// content segment must be "code", "input" or "output" and the id a
// non-negative base-10 integer, otherwise Decode fails with ErrInvalidName.
//
// Encoding is permissive: the base name is lower-cased and joined with the
// content kind and id without validation. When no id is given, the next
// value of the codec's Sequence is used.
//
// Filename derives the companion source file name, for example
// "cpp_main_3.txt" or "java_lib_7.txt".
package boxname
