// Copyright (C) 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

// QualName holds the "::"-separated components of a qualified name. Only
// the last element may be a TplArgs, Ctor, Dtor, or OperCast; Value is
// never empty.
type QualName struct {
	Value []Node
}

func (QualName) isNode() {}

// TplArgs holds an ordered template argument list.
type TplArgs struct {
	Value []Node
}

func (TplArgs) isNode() {}

// TplArgPack holds a pack of type arguments collected from a J...E
// encoding, prior to pack expansion.
type TplArgPack struct {
	Value []Node
}

func (TplArgPack) isNode() {}
