package apply

// DefaultBackupSuffix is appended to the patched file name to form its backup.
const DefaultBackupSuffix = ".orig"

// Options control a single Apply.
type Options struct {
	// Reverse applies the hunks in the undo direction.
	Reverse bool
	// Force is the caller's prompting policy; the engine itself never prompts.
	Force bool
	// Backup copies the file to patch to File+BackupSuffix before writing.
	Backup       bool
	BackupSuffix string
	// File is the file to patch. Normal and ed diffs require it; for unified
	// and context diffs it overrides the path read from the headers.
	File string
	// OutputFile receives the result instead of the patched file.
	OutputFile string
	// BaseURL resolves relative paths taken from unified/context headers.
	BaseURL string
}

func (o *Options) backupSuffix() string {
	if o.BackupSuffix == "" {
		return DefaultBackupSuffix
	}
	return o.BackupSuffix
}
