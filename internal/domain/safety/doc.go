// Package safety classifies a free-text question into a risk category by
// plain keyword containment, so that readings touching on danger, health or
// legal matters carry a disclaimer and point to a professional.
package safety
