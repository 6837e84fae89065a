// Package parser reads normal, unified, context and ed diffs into apply.Hunks.
package parser
