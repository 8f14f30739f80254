// Package template defines the template-engine seam used by the render
// targets for their page envelopes. The default implementation lives in the
// gotemplate subpackage.
package template
