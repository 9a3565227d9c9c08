// Package boxkit is the helper layer of a presentation add-in that annotates
// code text boxes on slides.
//
// It covers two independent concerns:
//
//   - pkg/palette allocates hex colors that stay distinguishable from every
//     color already used on the slide (built on the pkg/rgb value type).
//   - pkg/boxname encodes and decodes text-box names such as
//     "c++ main_code_3" and derives companion filenames like
//     "cpp_main_3.txt".
//
// Kit wires both together with configuration from the environment
// (pkg/config) and a structured logger (pkg/logger):
//
//	kit, err := boxkit.NewFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	color, err := kit.NewColor()         // "3A9F0C"
//	name := kit.BoxName("C++ main", boxname.Code) // "c++ main_code_1"
//	file, err := kit.Filename(name)      // "cpp_main_1.txt"
//
// Environment variables:
//
//	BOXKIT_MIN_COLOR_DISTANCE  minimum squared RGB distance (100)
//	BOXKIT_MAX_COLOR_ATTEMPTS  allocation attempt cap, 0 = unbounded (1000000)
//	BOXKIT_REGISTER_COLORS     register allocated colors automatically (false)
//	BOXKIT_FIRST_BOX_ID        first id of the box sequence (1)
//	BOXKIT_LOG_LEVEL           debug, info, warn, error (info)
//	BOXKIT_LOG_FORMAT          text or json (text)
//
// A Kit owns its registry and sequence; create one per document when ids
// and colors need not be shared.
package boxkit
