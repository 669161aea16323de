package consts

import "os"

// ModeFile is the file mode used when writing rendered statement files.
const ModeFile = os.FileMode(0o644)
