/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package joberr

// Option is a functional option for New and NewAborted.
type Option func(*options)

type options struct {
	renderer Renderer
	noStack  bool
}

func newOptions(opts []Option) options {
	o := options{renderer: DefaultRenderer}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRenderer replaces the renderer used to compute the record message.
// A nil renderer restores DefaultRenderer.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		if r == nil {
			r = DefaultRenderer
		}
		o.renderer = r
	}
}

// WithoutStack drops trace text from the record, e.g. before sending it to
// an untrusted peer. The code is kept.
func WithoutStack() Option {
	return func(o *options) {
		o.noStack = true
	}
}
